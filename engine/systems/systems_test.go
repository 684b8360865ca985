package systems

import (
	"testing"

	"github.com/spaghettifunk/animacore/engine/ecs"
	"github.com/spaghettifunk/animacore/engine/gpu"
	"github.com/spaghettifunk/animacore/engine/math"
	"github.com/spaghettifunk/animacore/engine/pipeline"
)

func newTestCoordinator() *ecs.Coordinator {
	c := ecs.NewCoordinator()
	ecs.RegisterComponent[ecs.Transform](c)
	ecs.RegisterComponent[ecs.SceneTag](c)
	ecs.RegisterComponent[ecs.Camera](c)
	ecs.RegisterComponent[ecs.Light](c)
	ecs.RegisterComponent[ecs.MeshRenderer](c)
	ecs.RegisterComponent[ecs.Billboard](c)
	ecs.RegisterComponent[ecs.Root](c)
	ecs.RegisterComponent[ecs.Selected](c)
	ecs.RegisterSingleton[ecs.RenderContext](c, ecs.RenderContext{})
	return c
}

func TestTransformMatrixSystemWritesLocalAndWorld(t *testing.T) {
	c := newTestCoordinator()
	e, _ := c.CreateEntity()
	ecs.AddComponent(c, e, ecs.SceneTag{SceneID: 1, Active: true, Rendered: true})
	tr := ecs.Transform{}
	tr.SetPositionRotationScale(math.NewVec3(1, 2, 3), math.NewQuatIdentity(), math.NewVec3One())
	ecs.AddComponent(c, e, tr)

	TransformMatrixSystem(c, 1)

	got := ecs.GetComponent[ecs.Transform](c, e)
	want := math.NewMat4Translation(math.NewVec3(1, 2, 3))
	if got.World != want {
		t.Fatalf("expected world matrix to equal translation-only local, got %+v want %+v", got.World, want)
	}
}

func TestTransformHierarchyPropagatesToChild(t *testing.T) {
	c := newTestCoordinator()
	parent, _ := c.CreateEntity()
	child, _ := c.CreateEntity()

	ecs.AddComponent(c, parent, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, child, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, parent, ecs.Root{Name: "root"})

	parentTransform := ecs.Transform{}
	parentTransform.SetPositionRotationScale(math.NewVec3(10, 0, 0), math.NewQuatIdentity(), math.NewVec3One())
	parentTransform.Children = []ecs.Entity{child}
	ecs.AddComponent(c, parent, parentTransform)

	childTransform := ecs.Transform{}
	childTransform.SetPositionRotationScale(math.NewVec3(1, 0, 0), math.NewQuatIdentity(), math.NewVec3One())
	ecs.AddComponent(c, child, childTransform)

	TransformMatrixSystem(c, 1)
	TransformHierarchySystem(c, 1)

	got := ecs.GetComponent[ecs.Transform](c, child)
	wantTranslation := math.NewMat4Translation(math.NewVec3(1, 0, 0)).Mul(math.NewMat4Translation(math.NewVec3(10, 0, 0)))
	if got.World != wantTranslation {
		t.Fatalf("expected child world = child.Local * parent.World, got %+v want %+v", got.World, wantTranslation)
	}
}

func TestTransformHierarchySkipsChildWithoutTransform(t *testing.T) {
	c := newTestCoordinator()
	parent, _ := c.CreateEntity()
	child, _ := c.CreateEntity()
	ecs.AddComponent(c, parent, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, parent, ecs.Root{})

	pt := ecs.Transform{}
	pt.SetPositionRotationScale(math.NewVec3Zero(), math.NewQuatIdentity(), math.NewVec3One())
	pt.Children = []ecs.Entity{child}
	ecs.AddComponent(c, parent, pt)

	TransformMatrixSystem(c, 1)
	TransformHierarchySystem(c, 1) // must not panic with a childless transform
}

func TestLightContextSystemSumsAmbientAndClampsPointLights(t *testing.T) {
	c := newTestCoordinator()

	for i := 0; i < ecs.MaxPointLights+2; i++ {
		e, _ := c.CreateEntity()
		ecs.AddComponent(c, e, ecs.SceneTag{SceneID: 1, Rendered: true})
		ecs.AddComponent(c, e, ecs.Light{Kind: ecs.LightPoint, Color: math.NewVec3(1, 1, 1)})
	}

	ambient1, _ := c.CreateEntity()
	ecs.AddComponent(c, ambient1, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, ambient1, ecs.Light{Kind: ecs.LightAmbient, Color: math.NewVec3(0.1, 0.1, 0.1)})

	ambient2, _ := c.CreateEntity()
	ecs.AddComponent(c, ambient2, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, ambient2, ecs.Light{Kind: ecs.LightAmbient, Color: math.NewVec3(0.2, 0.2, 0.2)})

	otherScene, _ := c.CreateEntity()
	ecs.AddComponent(c, otherScene, ecs.SceneTag{SceneID: 2, Rendered: true})
	ecs.AddComponent(c, otherScene, ecs.Light{Kind: ecs.LightPoint})

	LightContextSystem(c, 1)

	rc := ecs.Singleton[ecs.RenderContext](c)
	if rc.Lights.PointCount != ecs.MaxPointLights {
		t.Fatalf("expected point count clamped to %d, got %d", ecs.MaxPointLights, rc.Lights.PointCount)
	}
	want := math.NewVec3(0.3, 0.3, 0.3)
	if rc.Lights.Ambient.Sub(want).Length() > 1e-4 {
		t.Fatalf("expected summed ambient ~%v, got %v", want, rc.Lights.Ambient)
	}
}

func TestCameraContextSystemSkipsInactiveAndNonRenderingCameras(t *testing.T) {
	c := newTestCoordinator()

	active, _ := c.CreateEntity()
	ecs.AddComponent(c, active, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, active, ecs.Camera{Active: true, Render: true, Width: 800, Height: 600, FOVRadians: 1, FarClip: 100})
	at := ecs.Transform{}
	at.SetPositionRotationScale(math.NewVec3Zero(), math.NewQuatIdentity(), math.NewVec3One())
	ecs.AddComponent(c, active, at)

	inactive, _ := c.CreateEntity()
	ecs.AddComponent(c, inactive, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, inactive, ecs.Camera{Active: false, Render: true})

	CameraContextSystem(c, 1)

	rc := ecs.Singleton[ecs.RenderContext](c)
	if len(rc.Cameras) != 1 {
		t.Fatalf("expected exactly 1 camera context, got %d", len(rc.Cameras))
	}
	if rc.Cameras[0].Owner != active {
		t.Fatalf("expected context owner to be the active camera entity")
	}
}

type fakeVertexArray struct{}

func (fakeVertexArray) Bind()   {}
func (fakeVertexArray) Unbind() {}
func (fakeVertexArray) Delete() {}
func (fakeVertexArray) AddAttribute(vbo gpu.Buffer, program gpu.ShaderProgram, layout gpu.AttribLayout) error {
	return nil
}
func (fakeVertexArray) SetIndexBuffer(ibo gpu.Buffer) {}
func (fakeVertexArray) IndexCount() int                { return 0 }
func (fakeVertexArray) Draw()                          {}

type fakeShaderProgram struct{}

func (fakeShaderProgram) Use()    {}
func (fakeShaderProgram) Delete() {}
func (fakeShaderProgram) SetUniform(name string, value interface{}) bool { return true }
func (fakeShaderProgram) Uniforms() []gpu.UniformInfo                    { return nil }
func (fakeShaderProgram) Attributes() []gpu.AttributeInfo                { return nil }
func (fakeShaderProgram) RequiredAttributes() gpu.AttributeMask          { return 0 }
func (fakeShaderProgram) AttributeLocation(name string) (int32, bool)    { return 0, false }
func (fakeShaderProgram) BindStorageBuffer(index int, buf gpu.Buffer) error { return nil }
func (fakeShaderProgram) BindStorageBufferBase(index int, bindingPoint uint32) error {
	return nil
}

type fakeResolver struct {
	va     gpu.VertexArray
	shader gpu.ShaderProgram
}

func (r fakeResolver) VertexArrayFor(handle uint32) (gpu.VertexArray, bool) {
	if handle == 0 {
		return nil, false
	}
	return r.va, true
}

func (r fakeResolver) ShaderProgramFor(handle uint32) (gpu.ShaderProgram, bool) {
	if handle == 0 {
		return nil, false
	}
	return r.shader, true
}

var _ gpu.VertexArray = fakeVertexArray{}
var _ gpu.ShaderProgram = fakeShaderProgram{}
var _ AssetResolver = fakeResolver{}

func TestMeshRenderSystemAppendsDrawCommandPerCamera(t *testing.T) {
	c := newTestCoordinator()
	rc := ecs.Singleton[ecs.RenderContext](c)
	p1, p2 := pipeline.New(), pipeline.New()
	rc.Cameras = []ecs.CameraContext{{Pipeline: p1}, {Pipeline: p2}}

	e, _ := c.CreateEntity()
	ecs.AddComponent(c, e, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, e, ecs.MeshRenderer{Mesh: 1, Material: 1})

	resolver := fakeResolver{va: fakeVertexArray{}, shader: fakeShaderProgram{}}
	MeshRenderSystem(c, 1, resolver)

	if len(p1.DrawCommands(pipeline.FilterForward)) != 1 || len(p2.DrawCommands(pipeline.FilterForward)) != 1 {
		t.Fatalf("expected one forward draw command pushed to each camera pipeline")
	}
}

func TestMeshRenderSystemEmitsOutlineForSelectedEntity(t *testing.T) {
	c := newTestCoordinator()
	rc := ecs.Singleton[ecs.RenderContext](c)
	p := pipeline.New()
	rc.Cameras = []ecs.CameraContext{{Pipeline: p}}

	e, _ := c.CreateEntity()
	ecs.AddComponent(c, e, ecs.SceneTag{SceneID: 1, Rendered: true})
	ecs.AddComponent(c, e, ecs.MeshRenderer{Mesh: 1, Material: 1})
	ecs.AddComponent(c, e, ecs.Selected{})

	SetOutlineShaderHandle(2)
	resolver := fakeResolver{va: fakeVertexArray{}, shader: fakeShaderProgram{}}
	MeshRenderSystem(c, 1, resolver)

	if len(p.DrawCommands(pipeline.FilterOutline)) != 1 {
		t.Fatalf("expected one outline draw command for the selected entity")
	}
}

func TestBillboardRenderSystemAppendsDrawCommand(t *testing.T) {
	c := newTestCoordinator()
	rc := ecs.Singleton[ecs.RenderContext](c)
	p := pipeline.New()
	rc.Cameras = []ecs.CameraContext{{Pipeline: p, Position: math.NewVec3(0, 0, 5)}}

	e, _ := c.CreateEntity()
	ecs.AddComponent(c, e, ecs.SceneTag{SceneID: 1, Rendered: true})
	tr := ecs.Transform{}
	tr.SetPositionRotationScale(math.NewVec3Zero(), math.NewQuatIdentity(), math.NewVec3One())
	ecs.AddComponent(c, e, tr)
	ecs.AddComponent(c, e, ecs.Billboard{VertexArray: fakeVertexArray{}, Width: 1, Height: 1})

	SetBillboardShaderHandle(3)
	resolver := fakeResolver{va: fakeVertexArray{}, shader: fakeShaderProgram{}}
	BillboardRenderSystem(c, 1, resolver)

	if len(p.DrawCommands(pipeline.FilterForward)) != 1 {
		t.Fatalf("expected one billboard draw command")
	}
}
