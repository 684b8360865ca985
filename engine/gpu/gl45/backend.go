package gl45

import (
	gl "github.com/go-gl/gl/v4.5-core/gl"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

func init() {
	gpu.RegisterBackend("gl45", New)
}

// Backend is the OpenGL >=4.5 core profile reference implementation of
// gpu.Backend (spec §6). It assumes a context has already been made
// current on the calling (main) thread, e.g. by platform.Window's GLFW
// bootstrap.
type Backend struct {
	maxViewportWidth  int
	maxViewportHeight int
}

// New constructs an uninitialized gl45 backend.
func New() gpu.Backend { return &Backend{} }

func (b *Backend) Name() string { return "gl45" }

// Init loads the GL function pointers and sets the fixed render state the
// reference backend requires: alpha blending, depth test, stencil test,
// back-face culling, and reads GL_MAX_VIEWPORT_DIMS (spec §6).
func (b *Backend) Init(cfg gpu.BackendConfig) error {
	if err := gl.Init(); err != nil {
		return core.NewError(core.KindAPIInitFailed, "gl.Init: %v", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.Enable(gl.STENCIL_TEST)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	var dims [2]int32
	gl.GetIntegerv(gl.MAX_VIEWPORT_DIMS, &dims[0])
	b.maxViewportWidth = int(dims[0])
	b.maxViewportHeight = int(dims[1])

	if cfg.WindowWidth > 0 && cfg.WindowHeight > 0 {
		gl.Viewport(0, 0, int32(cfg.WindowWidth), int32(cfg.WindowHeight))
	}

	return glErr()
}

func (b *Backend) MaxViewportSize() (width, height int) {
	return b.maxViewportWidth, b.maxViewportHeight
}
