package systems

import (
	"github.com/spaghettifunk/animacore/engine/ecs"
	"github.com/spaghettifunk/animacore/engine/math"
)

// CameraContextSystem pushes one CameraContext per active+render camera
// in the rendered scene onto RenderContext.Cameras, deriving the view
// matrix from the camera's Transform and the projection from the camera's
// own parameters (spec.md §4.6).
func CameraContextSystem(c *ecs.Coordinator, sceneID int) {
	rc := ecs.Singleton[ecs.RenderContext](c)
	scenes := ecs.ComponentStore[ecs.SceneTag](c)
	cameras := ecs.ComponentStore[ecs.Camera](c)
	if rc == nil || scenes == nil || cameras == nil {
		return
	}

	cameraEntities := cameras.Entities()
	for i := range cameras.Dense() {
		cam := &cameras.Dense()[i]
		e := cameraEntities[i]

		tag, ok := scenes.Get(e)
		if !ok || tag.SceneID != sceneID || !tag.Rendered {
			continue
		}
		if !cam.Active || !cam.Render {
			continue
		}

		transform := ecs.GetComponent[ecs.Transform](c, e)
		var position math.Vec3
		var view math.Mat4
		if transform != nil {
			position = transform.Position
			view = math.NewMat4LookAt(position, position.Add(forward(transform.Rotation)), up(transform.Rotation))
		} else {
			view = math.NewMat4Identity()
		}

		var projection math.Mat4
		aspect := float32(1)
		if cam.Height != 0 {
			aspect = float32(cam.Width) / float32(cam.Height)
		}
		switch cam.Projection {
		case ecs.ProjectionOrthographic:
			hw, hh := float32(cam.Width)/2, float32(cam.Height)/2
			projection = math.NewMat4Orthographic(-hw, hw, -hh, hh, cam.NearClip, cam.FarClip)
		default:
			projection = math.NewMat4Perspective(cam.FOVRadians, aspect, cam.NearClip, cam.FarClip)
		}

		rc.Cameras = append(rc.Cameras, ecs.CameraContext{
			Owner:          e,
			ViewProjection: view.Mul(projection),
			Position:       position,
			ClearColor:     cam.ClearColor,
			Target:         cam.Target,
			Pipeline:       cam.Pipeline,
		})
	}
}

func forward(q math.Quaternion) math.Vec3 {
	return math.NewVec3(0, 0, -1).Transform(q.ToMat4())
}

func up(q math.Quaternion) math.Vec3 {
	return math.NewVec3(0, 1, 0).Transform(q.ToMat4())
}
