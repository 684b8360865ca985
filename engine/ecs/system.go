package ecs

// System tracks the set of entities whose signature matches a declared
// requirement (components read/written, plus components required absent).
// Systems are processed in registration order by default (spec §4.1); this
// type only maintains membership, the caller decides what to do with it
// each tick.
type System struct {
	Name     string
	all      Signature // must have every bit set here
	none     Signature // must have none of these bits set
	order    []Entity
	position map[Entity]int
}

// RegisterSystem declares a system named name, matching entities whose
// signature contains every bit in requireAll and none of requireNone.
func (c *Coordinator) RegisterSystem(name string, requireAll, requireNone Signature) *System {
	s := &System{
		Name:     name,
		all:      requireAll,
		none:     requireNone,
		position: make(map[Entity]int),
	}
	c.systems = append(c.systems, s)
	return s
}

func (s *System) matches(sig Signature) bool {
	return sig.Contains(s.all) && !sig.Intersects(s.none)
}

func (s *System) onSignatureChanged(e Entity, sig Signature) {
	_, present := s.position[e]
	shouldBePresent := s.matches(sig)
	switch {
	case shouldBePresent && !present:
		s.position[e] = len(s.order)
		s.order = append(s.order, e)
	case !shouldBePresent && present:
		s.remove(e)
	}
}

func (s *System) remove(e Entity) {
	i, ok := s.position[e]
	if !ok {
		return
	}
	last := len(s.order) - 1
	moved := s.order[last]
	s.order[i] = moved
	s.position[moved] = i
	s.order = s.order[:last]
	delete(s.position, e)
}

// Entities returns the system's current matching set, in the order entities
// entered it (stable, but not meaningful across removals).
func (s *System) Entities() []Entity {
	return s.order
}
