package testbed

import (
	"fmt"

	"github.com/spaghettifunk/animacore/engine"
	"github.com/spaghettifunk/animacore/engine/assets"
	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/ecs"
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/math"
	"github.com/spaghettifunk/animacore/engine/passes"
	"github.com/spaghettifunk/animacore/engine/pipeline"
	"github.com/spaghettifunk/animacore/engine/primitives"
	"github.com/spaghettifunk/animacore/engine/systems"
)

// shaderPaths maps a material registry name to the GLSL asset it loads,
// relative to the engine configuration's asset base path.
var shaderPaths = map[string]string{
	"basic":   "shaders/basic.glsl",
	"outline": "shaders/outline.glsl",
}

// TestGame wires the render core's ECS/GPU/pipeline stack up into a
// single rotating cube scene, standing in for a real game module the way
// the teacher's own TestGame stood in for a real title built on top of
// its engine.
type TestGame struct {
	*engine.Game
}

type gameState struct {
	sceneID int
	camera  ecs.Entity
	cube    ecs.Entity

	materials *assets.Registry[gpu.ShaderProgram]
	meshes    *assets.Registry[gpu.VertexArray]
	resolver  *assets.Resolver

	spinRadiansPerSecond float32
}

func NewTestGame() (*TestGame, error) {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  1280,
				StartHeight: 720,
				Name:        "Anima Game Engine",
			},
			State: &gameState{
				sceneID:              0,
				spinRadiansPerSecond: 0.6,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

// materialLoader resolves a registry name to a compiled shader program via
// the GLSL asset file shaderPaths names it to.
func materialLoader(backend gpu.Backend) assets.Loader[gpu.ShaderProgram] {
	return func(name string) (gpu.ShaderProgram, error) {
		path, ok := shaderPaths[name]
		if !ok {
			return nil, fmt.Errorf("testbed: no shader asset registered for material %q", name)
		}
		return assets.LoadShaderProgram(backend, path)
	}
}

// meshLoader resolves a registry name to a primitive mesh uploaded
// against program, the only shader the demo scene's geometry draws with.
func meshLoader(backend gpu.Backend, program gpu.ShaderProgram) assets.Loader[gpu.VertexArray] {
	return func(name string) (gpu.VertexArray, error) {
		switch name {
		case "cube":
			return primitives.BuildVertexArray(backend, program, primitives.Cube(0))
		default:
			return nil, fmt.Errorf("testbed: no primitive registered under %q", name)
		}
	}
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.State.(*gameState)

	materials := assets.NewRegistry[gpu.ShaderProgram](materialLoader(g.Backend))
	basicHandle, err := materials.Acquire("basic", true)
	if err != nil {
		return fmt.Errorf("loading basic material: %w", err)
	}
	outlineHandle, err := materials.Acquire("outline", true)
	if err != nil {
		return fmt.Errorf("loading outline material: %w", err)
	}
	basicProgram, _ := materials.Payload(basicHandle)

	meshes := assets.NewRegistry[gpu.VertexArray](meshLoader(g.Backend, basicProgram))
	cubeHandle, err := meshes.Acquire("cube", true)
	if err != nil {
		return fmt.Errorf("building cube mesh: %w", err)
	}

	resolver := assets.NewResolver(meshes, materials)

	sm := systems.NewSystemManager(g.Backend, resolver)
	sm.SetActiveScenes([]int{state.sceneID})

	cameraEntity, err := sm.World.CreateEntity()
	if err != nil {
		return fmt.Errorf("creating camera entity: %w", err)
	}
	if err := ecs.AddComponent(sm.World, cameraEntity, ecs.SceneTag{SceneID: state.sceneID, Active: true, Rendered: true}); err != nil {
		return err
	}
	if err := ecs.AddComponent(sm.World, cameraEntity, ecs.Transform{Transform: *math.TransformFromPosition(math.NewVec3(0, 1.5, 6))}); err != nil {
		return err
	}

	forwardPass := passes.NewForwardPass(1)
	outlinePass := passes.NewOutlinePass(2)
	camPipeline := pipeline.New()
	camPipeline.AddPass(forwardPass)
	camPipeline.AddPass(outlinePass)
	camPipeline.AddPrerequisite(outlinePass.ID(), forwardPass.ID())
	camPipeline.SetFinalPass(outlinePass.ID())

	width, height := g.ApplicationConfig.StartWidth, g.ApplicationConfig.StartHeight
	target, err := g.Backend.NewFramebuffer(gpu.FramebufferSpec{
		Width:   int(width),
		Height:  int(height),
		Samples: 1,
		Attachments: []gpu.AttachmentSpec{
			{Format: gpu.FormatRGBA8},
			{Format: gpu.FormatRedInteger32},
			{Format: gpu.FormatDepth24Stencil8},
		},
	})
	if err != nil {
		return fmt.Errorf("creating camera target: %w", err)
	}
	camPipeline.SetTarget(target)

	if err := ecs.AddComponent(sm.World, cameraEntity, ecs.Camera{
		Width:      width,
		Height:     height,
		FOVRadians: math.DegToRad(45),
		NearClip:   0.1,
		FarClip:    1000,
		Projection: ecs.ProjectionPerspective,
		ClearColor: math.NewVec4Create(0.1, 0.1, 0.12, 1.0),
		Active:     true,
		Render:     true,
		Main:       true,
		Pipeline:   camPipeline,
		Target:     target,
	}); err != nil {
		return err
	}

	cubeEntity, err := sm.World.CreateEntity()
	if err != nil {
		return fmt.Errorf("creating cube entity: %w", err)
	}
	if err := ecs.AddComponent(sm.World, cubeEntity, ecs.SceneTag{SceneID: state.sceneID, Active: true, Rendered: true}); err != nil {
		return err
	}
	if err := ecs.AddComponent(sm.World, cubeEntity, ecs.Transform{Transform: *math.TransformCreate()}); err != nil {
		return err
	}
	if err := ecs.AddComponent(sm.World, cubeEntity, ecs.MeshRenderer{Mesh: uint32(cubeHandle), Material: uint32(basicHandle)}); err != nil {
		return err
	}
	if err := ecs.AddComponent(sm.World, cubeEntity, ecs.Selected{}); err != nil {
		return err
	}

	systems.SetOutlineShaderHandle(uint32(outlineHandle))

	state.materials = materials
	state.meshes = meshes
	state.resolver = resolver
	state.camera = cameraEntity
	state.cube = cubeEntity

	g.SystemManager = sm

	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)

	t := ecs.GetComponent[ecs.Transform](g.SystemManager.World, state.cube)
	if t == nil {
		return nil
	}
	angle := state.spinRadiansPerSecond * float32(deltaTime)
	t.SetRotation(t.Rotation.Mul(math.NewQuatFromAxisAngle(math.NewVec3(0, 1, 0), angle, true)))

	return nil
}

func (g *TestGame) Render(deltaTime float64) error {
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	if g.SystemManager == nil {
		return nil
	}

	cam := ecs.GetComponent[ecs.Camera](g.SystemManager.World, state.camera)
	if cam == nil {
		return nil
	}
	cam.Width, cam.Height = width, height
	if cam.Pipeline != nil {
		return cam.Pipeline.Resize(int(width), int(height))
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed...")
	state := g.State.(*gameState)

	if state.meshes != nil {
		if cam := ecs.GetComponent[ecs.Camera](g.SystemManager.World, state.camera); cam != nil && cam.Target != nil {
			cam.Target.Delete()
		}
	}
	return nil
}
