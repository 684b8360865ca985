package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/animacore/engine/core"
)

var startTime float64 = 0

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window
}

func New() (*Platform, error) {
	return &Platform{
		Window: nil,
	}, nil
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	p.Window = window

	p.Window.SetKeyCallback(keyCallback)
	p.Window.SetMouseButtonCallback(mouseButtonCallback)
	p.Window.SetCursorPosCallback(cursorPosCallback)
	p.Window.SetScrollCallback(scrollCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	startTime = glfw.GetTime()

	return nil
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}

// PumpMessages drains the GLFW event queue for the current frame. Input
// callbacks run synchronously from within this call.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

// SwapBuffers presents the frame rendered into the back buffer.
func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// IsRunning reports whether the window is still open: it returns false once
// the user has requested the window be closed (e.g. clicking the close
// button, or Alt+F4).
func (p *Platform) IsRunning() bool {
	return p.Window == nil || !p.Window.ShouldClose()
}

// FramebufferSize returns the current drawable size in pixels, which on
// high-DPI displays may differ from the window size passed to Startup.
func (p *Platform) FramebufferSize() (int, int) {
	return p.Window.GetFramebufferSize()
}

// ContentScale returns the window's DPI scale factor, used by render
// systems to size UI elements consistently across displays.
func (p *Platform) ContentScale() (float32, float32) {
	x, y := p.Window.GetContentScale()
	return x, y
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	code, ok := translateKey(key)
	if !ok {
		return
	}
	core.InputProcessKey(code, action == glfw.Press)
}

func mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := translateButton(button)
	if !ok {
		return
	}
	core.InputProcessButton(b, action == glfw.Press)
}

func cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	core.InputProcessMouseMove(uint16(xpos), uint16(ypos))
}

func scrollCallback(w *glfw.Window, xoff, yoff float64) {
	var delta int8
	switch {
	case yoff > 0:
		delta = 1
	case yoff < 0:
		delta = -1
	}
	core.InputProcessMouseWheel(delta)
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	ctx := core.EventContext{}
	ctx.Data.U16[0] = uint16(width)
	ctx.Data.U16[1] = uint16(height)
	core.EventFire(core.EVENT_CODE_RESIZED, nil, ctx)
}

// translateKey maps a GLFW key to the engine's platform-independent
// KeyCode. Letters and digits share GLFW's ASCII-based encoding with the
// Windows virtual-key codes KeyCode mirrors and pass through unchanged;
// F1-F24 are offset from KEY_F1, and every other supported key has an
// explicit entry.
func translateKey(key glfw.Key) (core.KeyCode, bool) {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return core.KeyCode(key), true
	}
	if key >= glfw.Key0 && key <= glfw.Key9 {
		return core.KeyCode(key), true
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF24 {
		return core.KEY_F1 + core.KeyCode(key-glfw.KeyF1), true
	}
	switch key {
	case glfw.KeyBackspace:
		return core.KEY_BACKSPACE, true
	case glfw.KeyEnter:
		return core.KEY_ENTER, true
	case glfw.KeyTab:
		return core.KEY_TAB, true
	case glfw.KeyPause:
		return core.KEY_PAUSE, true
	case glfw.KeyCapsLock:
		return core.KEY_CAPITAL, true
	case glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case glfw.KeySpace:
		return core.KEY_SPACE, true
	case glfw.KeyPageUp:
		return core.KEY_PRIOR, true
	case glfw.KeyPageDown:
		return core.KEY_NEXT, true
	case glfw.KeyEnd:
		return core.KEY_END, true
	case glfw.KeyHome:
		return core.KEY_HOME, true
	case glfw.KeyLeft:
		return core.KEY_LEFT, true
	case glfw.KeyUp:
		return core.KEY_UP, true
	case glfw.KeyRight:
		return core.KEY_RIGHT, true
	case glfw.KeyDown:
		return core.KEY_DOWN, true
	case glfw.KeyPrintScreen:
		return core.KEY_PRINT, true
	case glfw.KeyInsert:
		return core.KEY_INSERT, true
	case glfw.KeyDelete:
		return core.KEY_DELETE, true
	case glfw.KeyKP0:
		return core.KEY_NUMPAD0, true
	case glfw.KeyKP1:
		return core.KEY_NUMPAD1, true
	case glfw.KeyKP2:
		return core.KEY_NUMPAD2, true
	case glfw.KeyKP3:
		return core.KEY_NUMPAD3, true
	case glfw.KeyKP4:
		return core.KEY_NUMPAD4, true
	case glfw.KeyKP5:
		return core.KEY_NUMPAD5, true
	case glfw.KeyKP6:
		return core.KEY_NUMPAD6, true
	case glfw.KeyKP7:
		return core.KEY_NUMPAD7, true
	case glfw.KeyKP8:
		return core.KEY_NUMPAD8, true
	case glfw.KeyKP9:
		return core.KEY_NUMPAD9, true
	case glfw.KeyKPMultiply:
		return core.KEY_MULTIPLY, true
	case glfw.KeyKPAdd:
		return core.KEY_ADD, true
	case glfw.KeyKPSubtract:
		return core.KEY_SUBTRACT, true
	case glfw.KeyKPDecimal:
		return core.KEY_DECIMAL, true
	case glfw.KeyKPDivide:
		return core.KEY_DIVIDE, true
	case glfw.KeyKPEqual:
		return core.KEY_NUMPAD_EQUAL, true
	case glfw.KeyNumLock:
		return core.KEY_NUMLOCK, true
	case glfw.KeyScrollLock:
		return core.KEY_SCROLL, true
	case glfw.KeyLeftShift:
		return core.KEY_LSHIFT, true
	case glfw.KeyRightShift:
		return core.KEY_RSHIFT, true
	case glfw.KeyLeftControl:
		return core.KEY_LCONTROL, true
	case glfw.KeyRightControl:
		return core.KEY_RCONTROL, true
	case glfw.KeyLeftAlt:
		return core.KEY_LMENU, true
	case glfw.KeyRightAlt:
		return core.KEY_RMENU, true
	case glfw.KeyLeftSuper:
		return core.KEY_LWIN, true
	case glfw.KeyRightSuper:
		return core.KEY_RWIN, true
	case glfw.KeySemicolon:
		return core.KEY_SEMICOLON, true
	case glfw.KeyEqual:
		return core.KEY_PLUS, true
	case glfw.KeyComma:
		return core.KEY_COMMA, true
	case glfw.KeyMinus:
		return core.KEY_MINUS, true
	case glfw.KeyPeriod:
		return core.KEY_PERIOD, true
	case glfw.KeySlash:
		return core.KEY_SLASH, true
	case glfw.KeyGraveAccent:
		return core.KEY_GRAVE, true
	default:
		return 0, false
	}
}

func translateButton(button glfw.MouseButton) (core.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return core.BUTTON_LEFT, true
	case glfw.MouseButtonRight:
		return core.BUTTON_RIGHT, true
	case glfw.MouseButtonMiddle:
		return core.BUTTON_MIDDLE, true
	default:
		return 0, false
	}
}
