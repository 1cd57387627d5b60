// Package compile cross-compiles WGSL shader sources into the byte-code
// formats the supported graphics backends consume. Every source file is
// compiled once per target on every run; there is no caching, dependency
// tracking, or incremental rebuild. Outputs land at fixed relative paths
// keyed by the source filename stem:
//
//	<out>/SPIRV/<stem>.spv   Vulkan (binary, via naga)
//	<out>/MSL/<stem>.msl     Metal (source, via naga)
//	<out>/HLSL/<stem>.hlsl   Direct3D (source, via naga)
//	<out>/DXIL/<stem>.dxil   Direct3D (binary, via the external dxc
//	                         compiler applied to the HLSL output)
//
// naga has no DXIL backend, so the DXIL target shells out to dxc per
// file, the same way the original build script delegated byte-code
// generation to an external tool. When dxc is not installed the target
// is skipped with a warning.
package compile

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/msl"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/shaders"
)

// Target is one output byte-code format.
type Target int

const (
	// TargetSPIRV produces a SPIR-V binary for Vulkan.
	TargetSPIRV Target = iota

	// TargetMSL produces Metal Shading Language source.
	TargetMSL

	// TargetHLSL produces HLSL source (Shader Model 5.1).
	TargetHLSL

	// TargetDXIL produces DXIL byte code by running dxc on the HLSL
	// output. Requires dxc on PATH (or Options.DXCPath).
	TargetDXIL
)

// String returns the canonical target name as used in output paths and
// the -targets CLI flag.
func (t Target) String() string {
	switch t {
	case TargetSPIRV:
		return "SPIRV"
	case TargetMSL:
		return "MSL"
	case TargetHLSL:
		return "HLSL"
	case TargetDXIL:
		return "DXIL"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ext returns the output file extension for the target.
func (t Target) ext() string {
	switch t {
	case TargetSPIRV:
		return ".spv"
	case TargetMSL:
		return ".msl"
	case TargetHLSL:
		return ".hlsl"
	case TargetDXIL:
		return ".dxil"
	default:
		return ".out"
	}
}

// DefaultTargets returns the targets that need no external tooling:
// SPIRV, MSL, and HLSL.
func DefaultTargets() []Target {
	return []Target{TargetSPIRV, TargetMSL, TargetHLSL}
}

// ParseTargets parses a comma-separated, case-insensitive target list
// such as "spirv,msl,dxil".
func ParseTargets(s string) ([]Target, error) {
	var out []Target
	for _, part := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(part)) {
		case "SPIRV", "SPV":
			out = append(out, TargetSPIRV)
		case "MSL", "METAL":
			out = append(out, TargetMSL)
		case "HLSL":
			out = append(out, TargetHLSL)
		case "DXIL":
			out = append(out, TargetDXIL)
		case "":
			continue
		default:
			return nil, fmt.Errorf("compile: unknown target %q", strings.TrimSpace(part))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compile: no targets in %q", s)
	}
	return out, nil
}

// OutputPath returns the fixed output location for a source file and
// target: <outDir>/<TARGET>/<stem><ext>, where stem is the source
// filename without its .wgsl extension ("sprite.vert.wgsl" keeps its
// stage suffix and becomes "sprite.vert.spv").
func OutputPath(outDir string, target Target, sourceName string) string {
	stem := strings.TrimSuffix(filepath.Base(sourceName), ".wgsl")
	return filepath.Join(outDir, target.String(), stem+target.ext())
}

// Options configures a Compiler.
type Options struct {
	// OutDir is the output root. Defaults to "Compiled".
	OutDir string

	// Targets are the formats to produce. Defaults to DefaultTargets.
	Targets []Target

	// Debug includes debug info (OpName, OpLine) in SPIR-V output.
	Debug bool

	// DXCPath overrides the dxc executable location for the DXIL
	// target. When empty, dxc is looked up on PATH.
	DXCPath string
}

// Artifact describes one produced output file.
type Artifact struct {
	// Source is the shader source filename the artifact came from.
	Source string

	// Target is the format that was produced.
	Target Target

	// Path is where the artifact was written.
	Path string

	// Size is the artifact size in bytes.
	Size int
}

// Compiler batch-compiles WGSL sources into one or more targets.
type Compiler struct {
	opts Options
	dxc  string
}

// New returns a Compiler with defaults applied.
func New(opts Options) *Compiler {
	if opts.OutDir == "" {
		opts.OutDir = "Compiled"
	}
	if len(opts.Targets) == 0 {
		opts.Targets = DefaultTargets()
	}
	c := &Compiler{opts: opts}
	if c.wantsTarget(TargetDXIL) {
		c.dxc = opts.DXCPath
		if c.dxc == "" {
			path, err := exec.LookPath("dxc")
			if err != nil {
				sprite.Logger().Warn("dxc not found, DXIL target will be skipped", "err", err)
			} else {
				c.dxc = path
			}
		}
	}
	return c
}

func (c *Compiler) wantsTarget(t Target) bool {
	for _, have := range c.opts.Targets {
		if have == t {
			return true
		}
	}
	return false
}

// CompileFile compiles one .wgsl source file into every configured
// target. The first failing target aborts the file.
func (c *Compiler) CompileFile(path string) ([]Artifact, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compile: reading %s: %w", path, err)
	}
	return c.CompileSource(filepath.Base(path), string(source))
}

// CompileSource compiles in-memory WGSL source, named for output-path and
// stage purposes, into every configured target. The source is parsed,
// lowered, and validated once; each target then generates from the same
// IR module.
func (c *Compiler) CompileSource(name, source string) ([]Artifact, error) {
	module, err := lower(name, source)
	if err != nil {
		return nil, err
	}

	var artifacts []Artifact
	hlslWritten := false
	for _, target := range c.opts.Targets {
		var data []byte
		switch target {
		case TargetSPIRV:
			data, err = c.generateSPIRV(module)
		case TargetMSL:
			data, err = generateMSL(module)
		case TargetHLSL:
			data, err = generateHLSL(module)
			hlslWritten = err == nil
		case TargetDXIL:
			// DXIL is produced from the HLSL translation by the
			// external compiler; handled after the loop so the HLSL
			// source exists exactly once.
			continue
		}
		if err != nil {
			return artifacts, fmt.Errorf("compile: %s: %s: %w", name, target, err)
		}

		art, err := c.write(name, target, data)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, art)
	}

	if c.wantsTarget(TargetDXIL) {
		art, ok, err := c.compileDXIL(name, module, hlslWritten)
		if err != nil {
			return artifacts, err
		}
		if ok {
			artifacts = append(artifacts, art)
		}
	}
	return artifacts, nil
}

// CompileDir compiles every *.wgsl file in dir (non-recursive, sorted by
// name) into every configured target.
func (c *Compiler) CompileDir(dir string) ([]Artifact, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.wgsl"))
	if err != nil {
		return nil, fmt.Errorf("compile: globbing %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("compile: no .wgsl files in %s", dir)
	}
	sort.Strings(matches)

	var artifacts []Artifact
	for _, path := range matches {
		arts, err := c.CompileFile(path)
		artifacts = append(artifacts, arts...)
		if err != nil {
			return artifacts, err
		}
	}
	return artifacts, nil
}

// lower parses, lowers, and validates WGSL source to an IR module.
func lower(name, source string) (*ir.Module, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("compile: %s: %w", name, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("compile: %s: %w", name, err)
	}
	validationErrors, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("compile: %s: validation: %w", name, err)
	}
	if len(validationErrors) > 0 {
		return nil, fmt.Errorf("compile: %s: validation: %w", name, &validationErrors[0])
	}
	return module, nil
}

func (c *Compiler) generateSPIRV(module *ir.Module) ([]byte, error) {
	return naga.GenerateSPIRV(module, spirv.Options{
		Version: spirv.Version1_3,
		Debug:   c.opts.Debug,
	})
}

func generateMSL(module *ir.Module) ([]byte, error) {
	opts := msl.DefaultOptions()
	opts.FakeMissingBindings = true
	code, _, err := msl.Compile(module, opts)
	if err != nil {
		return nil, err
	}
	return []byte(code), nil
}

func generateHLSL(module *ir.Module) ([]byte, error) {
	code, _, err := hlsl.Compile(module, hlsl.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return []byte(code), nil
}

// compileDXIL runs dxc over the HLSL translation of the module. The HLSL
// output file is written first (producing it is a prerequisite, whether
// or not TargetHLSL was requested). Returns ok=false when dxc is
// unavailable.
func (c *Compiler) compileDXIL(name string, module *ir.Module, hlslWritten bool) (Artifact, bool, error) {
	if c.dxc == "" {
		sprite.Logger().Warn("skipping DXIL target: dxc not available", "source", name)
		return Artifact{}, false, nil
	}

	if !hlslWritten {
		data, err := generateHLSL(module)
		if err != nil {
			return Artifact{}, false, fmt.Errorf("compile: %s: %s: %w", name, TargetDXIL, err)
		}
		if _, err := c.write(name, TargetHLSL, data); err != nil {
			return Artifact{}, false, err
		}
	}

	profile, entry, err := dxcStage(name)
	if err != nil {
		return Artifact{}, false, err
	}

	hlslPath := OutputPath(c.opts.OutDir, TargetHLSL, name)
	outPath := OutputPath(c.opts.OutDir, TargetDXIL, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Artifact{}, false, fmt.Errorf("compile: creating %s: %w", filepath.Dir(outPath), err)
	}

	cmd := exec.Command(c.dxc, "-T", profile, "-E", entry, "-Fo", outPath, hlslPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return Artifact{}, false, fmt.Errorf("compile: %s: dxc: %w: %s", name, err, strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return Artifact{}, false, fmt.Errorf("compile: %s: dxc produced no output: %w", name, err)
	}

	art := Artifact{Source: name, Target: TargetDXIL, Path: outPath, Size: int(info.Size())}
	sprite.Logger().Debug("compiled shader", "source", name, "target", TargetDXIL.String(), "path", outPath, "bytes", art.Size)
	return art, true, nil
}

// dxcStage maps a shader filename to the dxc target profile and entry
// point for its stage.
func dxcStage(name string) (profile, entry string, err error) {
	switch shaders.StageOf(name) {
	case shaders.StageVertex:
		return "vs_6_0", shaders.VertexEntryPoint, nil
	case shaders.StageFragment:
		return "ps_6_0", shaders.FragmentEntryPoint, nil
	default:
		return "", "", fmt.Errorf("compile: %s: cannot derive shader stage from filename", name)
	}
}

// write stores one artifact at its fixed output path.
func (c *Compiler) write(name string, target Target, data []byte) (Artifact, error) {
	outPath := OutputPath(c.opts.OutDir, target, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Artifact{}, fmt.Errorf("compile: creating %s: %w", filepath.Dir(outPath), err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("compile: writing %s: %w", outPath, err)
	}
	art := Artifact{Source: name, Target: target, Path: outPath, Size: len(data)}
	sprite.Logger().Debug("compiled shader", "source", name, "target", target.String(), "path", outPath, "bytes", len(data))
	return art, nil
}
