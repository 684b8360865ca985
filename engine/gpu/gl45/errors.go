package gl45

import (
	"strconv"

	gl "github.com/go-gl/gl/v4.5-core/gl"
)

// glErr returns the accumulated OpenGL error log as a single error, or nil
// if the error log is empty. Grounded on soypat-glgl's Err()/glError combo:
// GL reports errors as a sticky flag queue rather than per-call returns.
func glErr() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	msg := glErrString(code)
	for i := 0; i < 64; i++ {
		next := gl.GetError()
		if next == gl.NO_ERROR {
			break
		}
		msg += "; " + glErrString(next)
	}
	return errString(msg)
}

func glErrString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return "glError(" + strconv.Itoa(int(code)) + ")"
	}
}

type errString string

func (e errString) Error() string { return string(e) }
