package ecs

import (
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/math"
	"github.com/spaghettifunk/animacore/engine/pipeline"
)

// Transform is the core spatial component: local position/rotation/scale
// plus the derived local and world matrices the transform systems write
// each frame. It embeds the teacher's math.Transform for the T/R/S state
// and composition logic, adding the ECS-specific world matrix, local
// center offset, and entity-id child list spec.md §3 requires (the
// teacher's own Transform links parent/child by pointer, which does not
// fit an ECS where hierarchy is just data).
type Transform struct {
	math.Transform
	World        math.Mat4
	CenterOffset math.Vec3
	Children     []Entity
}

// SceneTag marks the scene an entity belongs to and whether that scene is
// currently active and rendered (spec.md §3).
type SceneTag struct {
	SceneID  int
	Active   bool
	Rendered bool
}

// ProjectionKind selects how Camera derives its projection matrix.
type ProjectionKind uint8

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

// Camera holds the viewport/projection parameters and owns a render
// pipeline plus a target framebuffer (spec.md §3). The view matrix is
// derived from the associated Transform by the camera context system.
type Camera struct {
	Width, Height    uint32
	FOVRadians       float32
	NearClip         float32
	FarClip          float32
	Projection       ProjectionKind
	ClearColor       math.Vec4
	Active           bool
	Render           bool
	Main             bool
	Pipeline         *pipeline.Pipeline
	Target           gpu.Framebuffer
}

// LightKind discriminates the variant a Light component carries.
type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightPoint
	LightSpot
)

// Light carries the union of fields used by any of the four light
// variants named in spec.md §3; only the fields relevant to Kind are
// meaningful. Keeping a single component type (rather than one type per
// variant) lets the light context system query one component store
// instead of four.
type Light struct {
	Kind      LightKind
	Color     math.Vec3
	Direction math.Vec3 // directional, spot

	// Point/spot attenuation.
	Range                float32
	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32

	// Spot cone.
	InnerConeRadians float32
	OuterConeRadians float32
}

// MeshRenderer references a loaded mesh and material asset, non-owning
// (spec.md §3; asset loading itself is out of scope, see engine/assets).
// Handles are plain uint32s rather than engine/assets.Handle so engine/ecs
// does not need to import engine/assets; callers convert with a plain
// cast (engine/assets.Handle shares the same underlying type).
type MeshRenderer struct {
	Mesh     uint32
	Material uint32
}

// Billboard marks a renderable as a camera-facing quad; AxisLocked selects
// whether BillboardFaceRotation constrains its look vector to the
// horizontal plane (spec.md §3/§4.6).
type Billboard struct {
	VertexArray  gpu.VertexArray
	AxisLocked   bool
	CustomAxis   math.Vec3
	HasCustomAxis bool
	Width, Height float32
}

// Parent links a child entity to its parent (spec.md §3).
type Parent struct {
	Entity Entity
}

// Root marks a model root entity, aggregating its name, backing asset,
// and a cached count of direct children (spec.md §3).
type Root struct {
	Name       string
	AssetRef   uint32
	ChildCount int
}

// Name is a human-readable label, not used for identity.
type Name struct {
	Value string
}

// Uuid is a stable 128-bit identifier, distinct from the transient
// Entity id (spec.md §3 / SPEC_FULL.md §3: backed by google/uuid rather
// than a hand-rolled 128-bit type).
type Uuid struct {
	Value [16]byte
}

// Selected tags an entity as the current selection target; the outline
// render system emits an extra draw command for any entity carrying it
// (spec.md §4.6).
type Selected struct{}

// CameraContext is one queued camera's worth of per-frame render state,
// pushed by the camera context system and consumed by the mesh/billboard
// render systems (spec.md §4.6).
type CameraContext struct {
	Owner         Entity
	ViewProjection math.Mat4
	Position      math.Vec3
	ClearColor    math.Vec4
	Target        gpu.Framebuffer
	Pipeline      *pipeline.Pipeline
}

// SceneLights is the light context system's per-scene output: an ambient
// sum, a single directional slot, and capped arrays of point/spot light
// indices (spec.md §4.6). Counts are clamped to MaxPointLights/
// MaxSpotLights; excess lights in scene order are ignored.
const (
	MaxPointLights = 16
	MaxSpotLights  = 16
)

type SceneLights struct {
	Ambient          math.Vec3
	HasDirectional   bool
	Directional      Light
	PointEntities    [MaxPointLights]Entity
	PointCount       int
	SpotEntities     [MaxSpotLights]Entity
	SpotCount        int
}

// RenderContext is the render driver's per-frame singleton: which scene
// is being rendered, the queued camera contexts, and the collected scene
// lights (spec.md §3). Reset at the start of each frame for each scene.
type RenderContext struct {
	SceneID int
	Cameras []CameraContext
	Lights  SceneLights
}

// ResetForScene clears the per-frame queue for a new scene pass,
// preserving the allocated backing array of Cameras across frames.
func (rc *RenderContext) ResetForScene(sceneID int) {
	rc.SceneID = sceneID
	rc.Cameras = rc.Cameras[:0]
	rc.Lights = SceneLights{}
}
