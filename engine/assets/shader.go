package assets

import (
	"os"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

// LoadShaderProgram reads a single #type-sectioned GLSL source file from
// path and compiles it through backend, generalizing the teacher's
// assets/loaders/shader.go file-read idiom (os.ReadFile) from TOML
// stage-config decoding to gpu.ParseShaderSource's #type splitting.
func LoadShaderProgram(backend gpu.Backend, path string) (gpu.ShaderProgram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewError(core.KindFileNotFound, "assets: %v", err)
	}
	vertex, fragment, err := gpu.ParseShaderSource(string(data))
	if err != nil {
		return nil, err
	}
	return backend.NewShaderProgram(vertex, fragment)
}
