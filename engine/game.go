package engine

import (
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/systems"
)

// Game is the application-supplied hook set plus the engine state it is
// handed once ApplicationCreate has brought up the window and the GPU
// backend. FnInitialize is expected to build SystemManager (registering
// components, constructing an asset resolver over Backend) before
// returning.
type Game struct {
	ApplicationConfig *ApplicationConfig
	Backend           gpu.Backend
	SystemManager     *systems.SystemManager
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
