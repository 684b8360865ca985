package pipeline

import (
	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

// Pipeline owns a collection of passes, a designated final-output pass, a
// target framebuffer, a per-frame draw-command buffer, and an execution
// plan rebuilt lazily on dirty (spec §4.5).
type Pipeline struct {
	passes  map[uint32]Pass
	order   []uint32 // insertion order, for deterministic terminal-pass selection
	finalID uint32
	hasFinal bool

	target gpu.Framebuffer

	commands []DrawCommand

	dirty bool
	plan  []uint32
}

func New() *Pipeline {
	return &Pipeline{
		passes: make(map[uint32]Pass),
	}
}

func (p *Pipeline) SetTarget(target gpu.Framebuffer) {
	p.target = target
	p.dirty = true
}

func (p *Pipeline) Target() gpu.Framebuffer { return p.target }

// AddPass inserts pass. If it is the only pass in the pipeline it becomes
// the final output (spec §4.5).
func (p *Pipeline) AddPass(pass Pass) {
	p.passes[pass.ID()] = pass
	p.order = append(p.order, pass.ID())
	if len(p.passes) == 1 {
		p.finalID = pass.ID()
		p.hasFinal = true
		pass.SetFinal(true)
	}
	p.dirty = true
}

// RemovePass erases the pass with the given id. For every (prereq, effect)
// pair of the removed pass, a prereq→effect edge is synthesized so
// downstream passes keep seeing upstream results. If the removed pass was
// final, a new final is chosen from the terminal passes (no effects),
// preferring the first terminal in insertion order; if none exist the
// final is cleared (spec §4.5).
func (p *Pipeline) RemovePass(id uint32) {
	removed, ok := p.passes[id]
	if !ok {
		return
	}

	prereqs := append([]uint32(nil), removed.Prerequisites()...)
	effects := append([]uint32(nil), removed.Effects()...)

	for _, prereqID := range prereqs {
		if prereq, ok := p.passes[prereqID]; ok {
			prereq.RemoveEffect(id)
			for _, effectID := range effects {
				prereq.AddEffect(effectID)
			}
		}
	}
	for _, effectID := range effects {
		if effect, ok := p.passes[effectID]; ok {
			effect.RemovePrerequisite(id)
			for _, prereqID := range prereqs {
				effect.AddPrerequisite(prereqID)
			}
		}
	}

	delete(p.passes, id)
	for i, pid := range p.order {
		if pid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}

	if p.hasFinal && p.finalID == id {
		p.hasFinal = false
		for _, candidateID := range p.order {
			if len(p.passes[candidateID].Effects()) == 0 {
				p.finalID = candidateID
				p.hasFinal = true
				p.passes[candidateID].SetFinal(true)
				break
			}
		}
	}
	p.dirty = true
}

// SetFinalPass designates id as the pipeline's final output pass. This is
// the explicit counterpart to the automatic "only pass becomes final" rule
// in AddPass, used when a pipeline's terminal pass is not simply whichever
// pass was added first.
func (p *Pipeline) SetFinalPass(id uint32) {
	pass, ok := p.passes[id]
	if !ok {
		return
	}
	if p.hasFinal {
		if old, ok := p.passes[p.finalID]; ok {
			old.SetFinal(false)
		}
	}
	p.finalID = id
	p.hasFinal = true
	pass.SetFinal(true)
	p.dirty = true
}

func (p *Pipeline) AddPrerequisite(passID, prereqID uint32) {
	if pass, ok := p.passes[passID]; ok {
		pass.AddPrerequisite(prereqID)
	}
	if prereq, ok := p.passes[prereqID]; ok {
		prereq.AddEffect(passID)
	}
	p.dirty = true
}

func (p *Pipeline) AddEffect(passID, effectID uint32) {
	if pass, ok := p.passes[passID]; ok {
		pass.AddEffect(effectID)
	}
	if effect, ok := p.passes[effectID]; ok {
		effect.AddPrerequisite(passID)
	}
	p.dirty = true
}

func (p *Pipeline) RemovePrerequisite(passID, prereqID uint32) {
	if pass, ok := p.passes[passID]; ok {
		pass.RemovePrerequisite(prereqID)
	}
	if prereq, ok := p.passes[prereqID]; ok {
		prereq.RemoveEffect(passID)
	}
	p.dirty = true
}

func (p *Pipeline) RemoveEffect(passID, effectID uint32) {
	if pass, ok := p.passes[passID]; ok {
		pass.RemoveEffect(effectID)
	}
	if effect, ok := p.passes[effectID]; ok {
		effect.RemovePrerequisite(passID)
	}
	p.dirty = true
}

// PushDrawCommand appends a draw command to the per-frame buffer; render
// systems call this once per renderable per camera (spec §4.6).
func (p *Pipeline) PushDrawCommand(cmd DrawCommand) {
	p.commands = append(p.commands, cmd)
}

// DrawCommands returns the current frame's accumulated draw commands,
// filtered to those whose mask intersects filter.
func (p *Pipeline) DrawCommands(filter FilterMask) []DrawCommand {
	out := make([]DrawCommand, 0, len(p.commands))
	for _, cmd := range p.commands {
		if cmd.Filter.Intersects(filter) {
			out = append(out, cmd)
		}
	}
	return out
}

// Execute rebuilds the execution plan if dirty, fails with
// core.KindPipelineNoRenderTarget if no target is set, then runs every
// pass in plan order and clears the per-frame draw command buffer
// (spec §4.5).
func (p *Pipeline) Execute() error {
	if p.target == nil {
		return core.NewError(core.KindPipelineNoRenderTarget, "pipeline has no target framebuffer")
	}
	if p.dirty {
		plan, err := p.buildPlan()
		if err != nil {
			return err
		}
		p.plan = plan
		p.dirty = false
	}
	for _, id := range p.plan {
		if err := p.passes[id].Execute(p); err != nil {
			return err
		}
	}
	p.commands = p.commands[:0]
	return nil
}

// Resize is a no-op if the target is unset; otherwise it resizes the
// target and every pass (spec §4.5).
func (p *Pipeline) Resize(width, height int) error {
	if p.target == nil {
		return nil
	}
	if err := p.target.Resize(width, height); err != nil {
		return err
	}
	for _, id := range p.order {
		if err := p.passes[id].Resize(width, height); err != nil {
			return err
		}
	}
	return nil
}

// buildPlan computes a postorder DFS starting from the final pass
// (or every terminal pass if there is none), recursing into prerequisites
// first, so every prerequisite is scheduled strictly before its dependents
// (spec §4.5). Cycles fail with core.KindPipelineCycle.
func (p *Pipeline) buildPlan() ([]uint32, error) {
	roots := p.roots()

	visited := make(map[uint32]bool, len(p.passes))
	onStack := make(map[uint32]bool, len(p.passes))
	var plan []uint32

	var visit func(id uint32) error
	visit = func(id uint32) error {
		if visited[id] {
			return nil
		}
		if onStack[id] {
			return core.NewError(core.KindPipelineCycle, "pass graph contains a cycle at pass %d", id)
		}
		onStack[id] = true
		pass, ok := p.passes[id]
		if ok {
			for _, prereqID := range pass.Prerequisites() {
				if _, exists := p.passes[prereqID]; exists {
					if err := visit(prereqID); err != nil {
						return err
					}
				}
			}
		}
		onStack[id] = false
		visited[id] = true
		plan = append(plan, id)
		return nil
	}

	for _, id := range roots {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	// Any pass unreachable from a root (disconnected component) still
	// needs to run; append it in insertion order.
	for _, id := range p.order {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// roots returns the final pass if one is set, otherwise every terminal
// pass (no effects), in insertion order.
func (p *Pipeline) roots() []uint32 {
	if p.hasFinal {
		if _, ok := p.passes[p.finalID]; ok {
			return []uint32{p.finalID}
		}
	}
	var terminals []uint32
	for _, id := range p.order {
		if len(p.passes[id].Effects()) == 0 {
			terminals = append(terminals, id)
		}
	}
	return terminals
}
