// Package systems implements the thin render-system producers of
// SPEC_FULL.md §4.6: each reads ECS state for the currently rendered
// scene and either mutates transform state or appends draw commands to
// the active camera pipelines.
package systems

import "github.com/spaghettifunk/animacore/engine/ecs"

// TransformMatrixSystem writes local = T·R·S for every Transform in the
// rendered scene and copies it into World as the starting point for the
// hierarchy system. Must run before TransformHierarchySystem.
func TransformMatrixSystem(c *ecs.Coordinator, sceneID int) {
	scenes := ecs.ComponentStore[ecs.SceneTag](c)
	transforms := ecs.ComponentStore[ecs.Transform](c)
	if scenes == nil || transforms == nil {
		return
	}
	sceneEntities := scenes.Entities()
	for i, tag := range scenes.Dense() {
		if tag.SceneID != sceneID || !tag.Rendered {
			continue
		}
		t, ok := transforms.Get(sceneEntities[i])
		if !ok {
			continue
		}
		t.Local = t.GetLocal()
		t.World = t.Local
	}
}

// TransformHierarchySystem walks each root entity's Children list
// depth-first, setting child.World = parent.World · child.Local. A child
// entity missing a Transform is skipped, not an error (spec.md §4.6).
func TransformHierarchySystem(c *ecs.Coordinator, sceneID int) {
	scenes := ecs.ComponentStore[ecs.SceneTag](c)
	roots := ecs.ComponentStore[ecs.Root](c)
	if scenes == nil || roots == nil {
		return
	}
	rootEntities := roots.Entities()
	for _, e := range rootEntities {
		tag, ok := scenes.Get(e)
		if !ok || tag.SceneID != sceneID || !tag.Rendered {
			continue
		}
		if t := ecs.GetComponent[ecs.Transform](c, e); t != nil {
			propagateChildren(c, t, t.Children)
		}
	}
}

func propagateChildren(c *ecs.Coordinator, parent *ecs.Transform, children []ecs.Entity) {
	for _, child := range children {
		ct := ecs.GetComponent[ecs.Transform](c, child)
		if ct == nil {
			continue
		}
		ct.Local = ct.GetLocal()
		ct.World = ct.Local.Mul(parent.World)
		propagateChildren(c, ct, ct.Children)
	}
}
