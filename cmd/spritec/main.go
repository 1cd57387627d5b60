// Command spritec batch-compiles WGSL shader sources for every supported
// graphics backend.
//
// Usage:
//
//	spritec [options] [shader-dir | file.wgsl ...]
//
// With no arguments, the shaders embedded in this module are compiled.
// Outputs land under the output root keyed by target and filename stem,
// e.g. Compiled/SPIRV/sprite.vert.spv.
//
// Examples:
//
//	spritec                              # compile the embedded shaders
//	spritec Shaders/Source               # compile a directory of .wgsl files
//	spritec -targets spirv,dxil fx.vert.wgsl
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/compile"
	"github.com/gogpu/sprite/shaders"
)

var (
	output  = flag.String("o", "Compiled", "output root directory")
	targets = flag.String("targets", "spirv,msl,hlsl", "comma-separated targets: spirv, msl, hlsl, dxil")
	debug   = flag.Bool("debug", false, "include debug info in SPIR-V output")
	verbose = flag.Bool("v", false, "log per-file compilation details")
	version = flag.Bool("version", false, "print version")
)

const spritecVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("spritec version %s\n", spritecVersion)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	sprite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	targetList, err := compile.ParseTargets(*targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	compiler := compile.New(compile.Options{
		OutDir:  *output,
		Targets: targetList,
		Debug:   *debug,
	})

	artifacts, err := run(compiler, flag.Args())
	for _, art := range artifacts {
		fmt.Printf("%-24s -> %s (%d bytes)\n", art.Source, art.Path, art.Size)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run compiles the requested inputs: the embedded shaders when args is
// empty, a whole directory, or an explicit list of files.
func run(compiler *compile.Compiler, args []string) ([]compile.Artifact, error) {
	if len(args) == 0 {
		var artifacts []compile.Artifact
		for _, name := range shaders.Names() {
			source, _ := shaders.Source(name)
			arts, err := compiler.CompileSource(name, source)
			artifacts = append(artifacts, arts...)
			if err != nil {
				return artifacts, err
			}
		}
		return artifacts, nil
	}

	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return compiler.CompileDir(args[0])
		}
	}

	var artifacts []compile.Artifact
	for _, path := range args {
		if !strings.HasSuffix(path, ".wgsl") {
			return artifacts, fmt.Errorf("not a .wgsl file: %s", path)
		}
		arts, err := compiler.CompileFile(path)
		artifacts = append(artifacts, arts...)
		if err != nil {
			return artifacts, err
		}
	}
	return artifacts, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spritec [options] [shader-dir | file.wgsl ...]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spritec                          Compile the embedded shaders\n")
	fmt.Fprintf(os.Stderr, "  spritec Shaders/Source           Compile every .wgsl in a directory\n")
	fmt.Fprintf(os.Stderr, "  spritec -targets spirv,dxil x.vert.wgsl\n")
}
