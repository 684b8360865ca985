package engine

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/animacore/engine/config"
	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/platform"

	_ "github.com/spaghettifunk/animacore/engine/gpu/gl45"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name string
}

type applicationState struct {
	GameInstance  *Game
	IsRunning     bool
	IsSuspended   bool
	PlatformState *platform.Platform
	Config        *config.EngineConfig
	Width         uint32
	Height        uint32
	Clock         *core.Clock
	LastTime      float64
}

// configPath is the conventional location of the TOML startup
// configuration relative to the working directory; a missing file falls
// back to config.DefaultEngineConfig rather than failing startup.
const configPath = "animacore.toml"

var newApplication sync.Once

var (
	initialize bool = false
	appState   *applicationState
)

func ApplicationCreate(gameInstance *Game) error {
	if initialize {
		return fmt.Errorf("application already initialized")
	}

	newApplication.Do(func() {
		appState = &applicationState{
			GameInstance: gameInstance,
			Clock:        core.NewClock(),
			IsRunning:    true,
			IsSuspended:  false,
			Width:        0,
			Height:       0,
			LastTime:     0,
		}
	})

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, 0, applicationOnEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, 0, applicationOnKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, 0, applicationOnKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, 0, applicationOnResized)

	p, err := platform.New()
	if err != nil {
		return err
	}

	if err := p.Startup(appState.GameInstance.ApplicationConfig.Name,
		appState.GameInstance.ApplicationConfig.StartPosX,
		appState.GameInstance.ApplicationConfig.StartPosY,
		appState.GameInstance.ApplicationConfig.StartWidth,
		appState.GameInstance.ApplicationConfig.StartHeight); err != nil {
		return err
	}
	appState.PlatformState = p

	cfg, err := config.Load(configPath)
	if err != nil {
		core.LogWarn("no %s found, using default engine configuration: %s", configPath, err.Error())
		defaults := config.DefaultEngineConfig()
		cfg = &defaults
	}
	appState.Config = cfg

	fbWidth, fbHeight := p.FramebufferSize()
	appState.Width, appState.Height = uint32(fbWidth), uint32(fbHeight)

	backend, err := gpu.NewBackend(cfg.Backend)
	if err != nil {
		return err
	}
	if err := backend.Init(gpu.BackendConfig{WindowWidth: fbWidth, WindowHeight: fbHeight}); err != nil {
		return err
	}
	appState.GameInstance.Backend = backend

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	if err := appState.GameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := appState.GameInstance.FnOnResize(appState.Width, appState.Height); err != nil {
		return err
	}

	initialize = true

	return nil
}

// ApplicationShutdown runs the game's FnShutdown and the SystemManager's
// Shutdown, then shuts down the event system, the input system and, last,
// the platform window.
func ApplicationShutdown() error {
	if appState == nil || !initialize {
		return nil
	}
	defer func() { initialize = false }()

	if appState.GameInstance.FnShutdown != nil {
		if err := appState.GameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if appState.GameInstance.SystemManager != nil {
		if err := appState.GameInstance.SystemManager.Shutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := core.EventShutdown(); err != nil {
		core.LogError(err.Error())
	}
	if err := core.InputShutdown(); err != nil {
		core.LogError(err.Error())
	}
	if appState.PlatformState != nil {
		return appState.PlatformState.Shutdown()
	}
	return nil
}

func ApplicationRun() error {
	appState.Clock.Start()
	appState.Clock.Update()

	appState.LastTime = appState.Clock.Elapsed()

	for appState.IsRunning {
		if !appState.PlatformState.IsRunning() {
			appState.IsRunning = false
			break
		}

		appState.PlatformState.PumpMessages()

		if !appState.IsSuspended {
			appState.Clock.Update()
			currentTime := appState.Clock.Elapsed()
			deltaTime := currentTime - appState.LastTime
			appState.LastTime = currentTime

			core.InputUpdate(deltaTime)

			if appState.GameInstance.SystemManager != nil {
				if err := appState.GameInstance.SystemManager.Update(deltaTime); err != nil {
					core.LogError("system manager update failed: %s", err.Error())
					appState.IsRunning = false
					break
				}
			}

			if err := appState.GameInstance.FnUpdate(deltaTime); err != nil {
				core.LogError("game update failed: %s", err.Error())
				appState.IsRunning = false
				break
			}

			if err := appState.GameInstance.FnRender(deltaTime); err != nil {
				core.LogError("game render failed: %s", err.Error())
				appState.IsRunning = false
				break
			}

			appState.PlatformState.SwapBuffers()

			core.MetricsUpdate(deltaTime)
		}
	}

	return ApplicationShutdown()
}

// ApplicationGetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func ApplicationGetFramebufferSize() (uint32, uint32) {
	w, h := appState.PlatformState.FramebufferSize()
	return uint32(w), uint32(h)
}

func applicationOnEvent(code core.SystemEventCode, sender interface{}, listener_inst interface{}, context core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		{
			core.LogInfo("EVENT_CODE_APPLICATION_QUIT recieved, shutting down.\n")
			appState.IsRunning = false
			return true
		}
	}
	return false
}

func applicationOnKey(code core.SystemEventCode, sender interface{}, listener_inst interface{}, context core.EventContext) bool {
	if code == core.EVENT_CODE_KEY_PRESSED {
		key_code := context.Data.U16[0]
		if key_code == uint16(core.KEY_ESCAPE) {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			data := core.EventContext{}
			core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, 0, data)
			// Block anything else from processing this.
			return true
		} else if key_code == uint16(core.KEY_A) {
			// Example on checking for a key
			core.LogDebug("Explicit - A key pressed!")
		} else {
			core.LogDebug("'%c' key pressed in window.", key_code)
		}
	} else if code == core.EVENT_CODE_KEY_RELEASED {
		key_code := context.Data.U16[0]
		if key_code == uint16(core.KEY_B) {
			// Example on checking for a key
			core.LogDebug("Explicit - B key released!")
		} else {
			core.LogDebug("'%c' key released in window.", key_code)
		}
	}
	return false
}

func applicationOnResized(code core.SystemEventCode, sender interface{}, listener_inst interface{}, context core.EventContext) bool {
	if code == core.EVENT_CODE_RESIZED {
		width := context.Data.U16[0]
		height := context.Data.U16[1]

		// Check if different. If so, trigger a resize event.
		if width != uint16(appState.Width) || height != uint16(appState.Height) {
			appState.Width = uint32(width)
			appState.Height = uint32(height)

			core.LogDebug("Window resize: %d, %d", width, height)

			// Handle minimization
			if width == 0 || height == 0 {
				core.LogInfo("Window minimized, suspending application.")
				appState.IsSuspended = true
				return true
			} else {
				if appState.IsSuspended {
					core.LogInfo("Window restored, resuming application.")
					appState.IsSuspended = false
				}
				appState.GameInstance.FnOnResize(uint32(width), uint32(height))

				// renderer_on_resized(width, height)
			}
		}
	}
	// Event purposely not handled to allow other listeners to get this.
	return false
}
