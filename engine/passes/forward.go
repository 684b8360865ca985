// Package passes implements the concrete render passes that execute a
// pipeline.Pipeline's accumulated draw commands against the GPU resource
// layer (spec.md §4.5/§4.6): forward opaque geometry and the selection
// outline overlay.
package passes

import "github.com/spaghettifunk/animacore/engine/pipeline"

// ForwardPass issues every draw command tagged FilterForward: bind the
// pipeline's target, upload each command's uniform map, and draw.
type ForwardPass struct {
	pipeline.BasePass
}

func NewForwardPass(id uint32) *ForwardPass {
	return &ForwardPass{BasePass: pipeline.NewBasePass(id)}
}

func (fp *ForwardPass) Execute(p *pipeline.Pipeline) error {
	if target := p.Target(); target != nil {
		target.Bind()
	}
	for _, cmd := range p.DrawCommands(pipeline.FilterForward) {
		cmd.Shader.Use()
		for name, value := range cmd.Uniforms {
			cmd.Shader.SetUniform(name, value)
		}
		cmd.VertexArray.Draw()
	}
	return nil
}

func (fp *ForwardPass) Resize(width, height int) error { return nil }

// OutlinePass issues every draw command tagged FilterOutline. Declared as
// an effect of ForwardPass by the caller so it always runs after opaque
// geometry, compositing the selection outline on top.
type OutlinePass struct {
	pipeline.BasePass
}

func NewOutlinePass(id uint32) *OutlinePass {
	return &OutlinePass{BasePass: pipeline.NewBasePass(id)}
}

func (op *OutlinePass) Execute(p *pipeline.Pipeline) error {
	for _, cmd := range p.DrawCommands(pipeline.FilterOutline) {
		cmd.Shader.Use()
		for name, value := range cmd.Uniforms {
			cmd.Shader.SetUniform(name, value)
		}
		cmd.VertexArray.Draw()
	}
	return nil
}

func (op *OutlinePass) Resize(width, height int) error { return nil }
