// Package shaders holds the authored WGSL shader sources and their
// stage/entry-point conventions. Sources are embedded so consumers can
// compile them at runtime (see the compile package) or hand them to a
// WGSL-native backend directly.
package shaders

import (
	"embed"
	"sort"
	"strings"
)

//go:embed *.wgsl
var fs embed.FS

// Entry point names shared by every shader in this package.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Shader source filenames.
const (
	SpriteVert    = "sprite.vert.wgsl"
	TextureFrag   = "texture.frag.wgsl"
	TransformVert = "transform.vert.wgsl"
)

// Stage identifies the pipeline stage a shader source targets.
type Stage int

const (
	// StageUnknown means the filename does not follow the
	// .vert.wgsl/.frag.wgsl naming convention.
	StageUnknown Stage = iota

	// StageVertex is a vertex shader (.vert.wgsl).
	StageVertex

	// StageFragment is a fragment shader (.frag.wgsl).
	StageFragment
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// StageOf derives the stage from a shader filename. Like the engine's
// loader, it keys on the extension before .wgsl.
func StageOf(name string) Stage {
	switch {
	case strings.HasSuffix(name, ".vert.wgsl") || strings.HasSuffix(name, ".vert"):
		return StageVertex
	case strings.HasSuffix(name, ".frag.wgsl") || strings.HasSuffix(name, ".frag"):
		return StageFragment
	default:
		return StageUnknown
	}
}

// Source returns the WGSL source for one of the embedded shader files.
func Source(name string) (string, bool) {
	data, err := fs.ReadFile(name)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Sources returns all embedded shader sources keyed by filename.
func Sources() map[string]string {
	entries, err := fs.ReadDir(".")
	if err != nil {
		// The embed is part of the build; a read failure here is a
		// programming error, not a runtime condition.
		panic("shaders: reading embedded sources: " + err.Error())
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		data, err := fs.ReadFile(e.Name())
		if err != nil {
			panic("shaders: reading embedded sources: " + err.Error())
		}
		out[e.Name()] = string(data)
	}
	return out
}

// Names returns the embedded shader filenames in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(".")
	if err != nil {
		panic("shaders: reading embedded sources: " + err.Error())
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
