package pipeline

import (
	"testing"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

type recordingPass struct {
	BasePass
	executed *[]uint32
}

func newRecordingPass(id uint32, log *[]uint32) *recordingPass {
	p := &recordingPass{BasePass: NewBasePass(id), executed: log}
	return p
}

func (p *recordingPass) Execute(pipeline *Pipeline) error {
	*p.executed = append(*p.executed, p.ID())
	return nil
}

func (p *recordingPass) Resize(width, height int) error { return nil }

type testFramebuffer struct {
	width, height int
}

func (f *testFramebuffer) Bind()   {}
func (f *testFramebuffer) Unbind() {}
func (f *testFramebuffer) Delete() {}
func (f *testFramebuffer) Resize(width, height int) error {
	f.width, f.height = width, height
	return nil
}
func (f *testFramebuffer) GetPixel(int, int, int, interface{}) error { return nil }
func (f *testFramebuffer) ClearAttachment(int, interface{}) error   { return nil }
func (f *testFramebuffer) ColorAttachmentTexture(int) gpu.Texture   { return nil }
func (f *testFramebuffer) Width() int                               { return f.width }
func (f *testFramebuffer) Height() int                              { return f.height }

var _ gpu.Framebuffer = (*testFramebuffer)(nil)

func TestPipelineThreePassDAGTopologicalOrder(t *testing.T) {
	var log []uint32
	a := newRecordingPass(1, &log)
	b := newRecordingPass(2, &log)
	c := newRecordingPass(3, &log)

	p := New()
	p.AddPass(a)
	p.AddPass(b)
	p.AddPass(c)
	p.AddPrerequisite(2, 1) // B depends on A
	p.AddPrerequisite(3, 2) // C depends on B
	p.SetTarget(&testFramebuffer{})

	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := []uint32{log[0], log[1], log[2]}; got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected order [A B C], got %v", got)
	}
}

func TestPipelineRemovePassSynthesizesEdgeAndReselectsFinal(t *testing.T) {
	var log []uint32
	a := newRecordingPass(1, &log)
	b := newRecordingPass(2, &log)
	c := newRecordingPass(3, &log)

	p := New()
	p.AddPass(a)
	p.AddPass(b)
	p.AddPass(c)
	p.AddPrerequisite(2, 1)
	p.AddPrerequisite(3, 2)
	p.SetFinalPass(3) // C is the chain's terminal pass
	p.SetTarget(&testFramebuffer{})

	p.RemovePass(2)

	if containsID(a.Effects(), 2) {
		t.Fatalf("expected A to no longer list removed pass B as an effect")
	}
	if !containsID(a.Effects(), 3) {
		t.Fatalf("expected edge A->C to be synthesized after removing B")
	}
	if !containsID(c.Prerequisites(), 1) {
		t.Fatalf("expected C to list A as a prerequisite after removing B")
	}
	if !p.hasFinal || p.finalID != 3 {
		t.Fatalf("expected final pass to remain C, got hasFinal=%v finalID=%d", p.hasFinal, p.finalID)
	}

	log = nil
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(log) != 2 || log[0] != 1 || log[1] != 3 {
		t.Fatalf("expected order [A C] after removal, got %v", log)
	}
}

func TestPipelineExecuteFailsWithoutTarget(t *testing.T) {
	p := New()
	p.AddPass(newRecordingPass(1, &[]uint32{}))

	err := p.Execute()
	if err == nil {
		t.Fatalf("expected error when target is unset")
	}
	ee, ok := err.(*core.EngineError)
	if !ok || ee.Kind != core.KindPipelineNoRenderTarget {
		t.Fatalf("expected KindPipelineNoRenderTarget, got %v", err)
	}
}

func TestPipelineExecuteClearsDrawCommandBuffer(t *testing.T) {
	var log []uint32
	p := New()
	p.AddPass(newRecordingPass(1, &log))
	p.SetTarget(&testFramebuffer{})

	p.PushDrawCommand(DrawCommand{Filter: FilterForward})
	if len(p.DrawCommands(FilterForward)) != 1 {
		t.Fatalf("expected one queued draw command before execute")
	}
	if err := p.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(p.commands) != 0 {
		t.Fatalf("expected draw command buffer cleared after execute, got %d remaining", len(p.commands))
	}
}

func TestPipelineDetectsCycle(t *testing.T) {
	var log []uint32
	a := newRecordingPass(1, &log)
	b := newRecordingPass(2, &log)

	p := New()
	p.AddPass(a)
	p.AddPass(b)
	p.AddPrerequisite(2, 1)
	p.AddPrerequisite(1, 2) // introduces a cycle
	p.SetTarget(&testFramebuffer{})

	err := p.Execute()
	if err == nil {
		t.Fatalf("expected cycle error")
	}
	ee, ok := err.(*core.EngineError)
	if !ok || ee.Kind != core.KindPipelineCycle {
		t.Fatalf("expected KindPipelineCycle, got %v", err)
	}
}

func TestPipelineResizeNoopWithoutTarget(t *testing.T) {
	p := New()
	p.AddPass(newRecordingPass(1, &[]uint32{}))
	if err := p.Resize(640, 480); err != nil {
		t.Fatalf("expected resize to be a no-op without a target, got %v", err)
	}
}

func TestPipelineResizePropagatesToTargetAndPasses(t *testing.T) {
	fb := &testFramebuffer{}
	p := New()
	p.AddPass(newRecordingPass(1, &[]uint32{}))
	p.SetTarget(fb)

	if err := p.Resize(800, 600); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if fb.Width() != 800 || fb.Height() != 600 {
		t.Fatalf("expected target resized to 800x600, got %dx%d", fb.Width(), fb.Height())
	}
}
