package systems

import (
	"github.com/spaghettifunk/animacore/engine/ecs"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

// SystemManager owns the ECS coordinator and drives the fixed-order render
// system pass for every active scene each frame. It generalizes the
// teacher's per-kind subsystem registry (engine/systems/manager.go's
// SystemManager, which wired together a CameraSystem/GeometrySystem/
// MaterialSystem/... and exposed Initialize/DrawFrame/OnResize/Shutdown)
// into a single driver over the ECS's fixed system order instead of a
// hand-wired list of renderer subsystems.
type SystemManager struct {
	World    *ecs.Coordinator
	Backend  gpu.Backend
	Resolver AssetResolver

	activeScenes []int
}

// NewSystemManager constructs a coordinator with every core component and
// the RenderContext singleton registered, matching the component set
// spec.md §3 names.
func NewSystemManager(backend gpu.Backend, resolver AssetResolver) *SystemManager {
	world := ecs.NewCoordinator()

	ecs.RegisterComponent[ecs.Transform](world)
	ecs.RegisterComponent[ecs.SceneTag](world)
	ecs.RegisterComponent[ecs.Camera](world)
	ecs.RegisterComponent[ecs.Light](world)
	ecs.RegisterComponent[ecs.MeshRenderer](world)
	ecs.RegisterComponent[ecs.Billboard](world)
	ecs.RegisterComponent[ecs.Parent](world)
	ecs.RegisterComponent[ecs.Root](world)
	ecs.RegisterComponent[ecs.Name](world)
	ecs.RegisterComponent[ecs.Uuid](world)
	ecs.RegisterComponent[ecs.Selected](world)
	ecs.RegisterSingleton[ecs.RenderContext](world, ecs.RenderContext{SceneID: -1})

	return &SystemManager{World: world, Backend: backend, Resolver: resolver}
}

// SetActiveScenes designates which scene ids are driven each frame, in the
// order they are updated and rendered.
func (sm *SystemManager) SetActiveScenes(sceneIDs []int) {
	sm.activeScenes = sceneIDs
}

// Update drives one frame: for every active scene it resets the render
// context, runs the fixed system order (spec.md §2: transform matrix →
// transform hierarchy → light context → camera context → render systems),
// then executes every queued camera's pipeline.
func (sm *SystemManager) Update(deltaTime float64) error {
	rc := ecs.Singleton[ecs.RenderContext](sm.World)
	if rc == nil {
		return nil
	}

	for _, sceneID := range sm.activeScenes {
		rc.ResetForScene(sceneID)

		TransformMatrixSystem(sm.World, sceneID)
		TransformHierarchySystem(sm.World, sceneID)
		LightContextSystem(sm.World, sceneID)
		CameraContextSystem(sm.World, sceneID)
		MeshRenderSystem(sm.World, sceneID, sm.Resolver)
		BillboardRenderSystem(sm.World, sceneID, sm.Resolver)

		for _, cam := range rc.Cameras {
			if cam.Pipeline == nil {
				continue
			}
			if cam.Target != nil {
				cam.Target.ClearAttachment(0, [4]float32{cam.ClearColor.X, cam.ClearColor.Y, cam.ClearColor.Z, cam.ClearColor.W})
			}
			if err := cam.Pipeline.Execute(); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnResize is a no-op at the manager level: cameras own their own target
// framebuffers and are resized individually by game code when their
// viewport changes, mirroring the teacher's RendererSystem.OnResize which
// only touched the renderer's own swapchain-equivalent state.
func (sm *SystemManager) OnResize(width, height uint32) error {
	return nil
}

// Shutdown releases manager-owned state. The coordinator itself holds no
// external resources; GPU object lifetimes are owned by whatever asset
// registry produced them.
func (sm *SystemManager) Shutdown() error {
	return nil
}
