package systems

import "github.com/spaghettifunk/animacore/engine/ecs"

// LightContextSystem collects every Light in the rendered scene into the
// RenderContext singleton's SceneLights: ambient colors are summed,
// directional takes the single slot (last one wins in scene order), and
// point/spot lights fill their capped arrays, excess ignored in scene
// order (spec.md §4.6).
func LightContextSystem(c *ecs.Coordinator, sceneID int) {
	rc := ecs.Singleton[ecs.RenderContext](c)
	scenes := ecs.ComponentStore[ecs.SceneTag](c)
	lights := ecs.ComponentStore[ecs.Light](c)
	if rc == nil || scenes == nil || lights == nil {
		return
	}

	var out ecs.SceneLights
	sceneEntities := scenes.Entities()
	sceneSet := make(map[ecs.Entity]bool, len(sceneEntities))
	for i, tag := range scenes.Dense() {
		if tag.SceneID == sceneID && tag.Rendered {
			sceneSet[sceneEntities[i]] = true
		}
	}

	lightEntities := lights.Entities()
	for i, l := range lights.Dense() {
		if !sceneSet[lightEntities[i]] {
			continue
		}
		switch l.Kind {
		case ecs.LightAmbient:
			out.Ambient = out.Ambient.Add(l.Color)
		case ecs.LightDirectional:
			out.Directional = l
			out.HasDirectional = true
		case ecs.LightPoint:
			if out.PointCount < ecs.MaxPointLights {
				out.PointEntities[out.PointCount] = lightEntities[i]
				out.PointCount++
			}
		case ecs.LightSpot:
			if out.SpotCount < ecs.MaxSpotLights {
				out.SpotEntities[out.SpotCount] = lightEntities[i]
				out.SpotCount++
			}
		}
	}
	rc.Lights = out
}
