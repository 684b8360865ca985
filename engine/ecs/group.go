package ecs

import "sort"

// Group2 is an accelerated "owning" view over two component types: the
// coordinator keeps every entity that owns both A and B packed into the
// front [0, size) of both stores, in the same order, so iterating the group
// yields aligned parallel spans with no per-entity signature check (spec
// §3, §4.2 — the owned/non-owned group design). Entities that carry only A
// or only B still live in their store, past the group's boundary; reads of
// components the group does not own go through the normal Store entity
// index map and are not kept in lockstep.
type Group2[A, B any] struct {
	c      *Coordinator
	sig    Signature
	idA    ComponentID
	idB    ComponentID
	storeA *Store[A]
	storeB *Store[B]
	size   int

	partitions map[string]*partitionState
}

// NewGroup2 declares a group owning component types A and B.
func NewGroup2[A, B any](c *Coordinator) *Group2[A, B] {
	storeA, idA, okA := storeFor[A](c)
	storeB, idB, okB := storeFor[B](c)
	if !okA || !okB {
		panic("ecs: NewGroup2 requires both component types to be registered first")
	}
	g := &Group2[A, B]{
		c:      c,
		sig:    Signature{}.Set(idA).Set(idB),
		idA:    idA,
		idB:    idB,
		storeA: storeA,
		storeB: storeB,
	}
	c.groups = append(c.groups, g)
	g.rebuildFull()
	return g
}

// beforeRemove evicts e from the group's front partition, if it is
// currently a member, before id's component is swap-removed from its
// store. Called for both A's and B's component ids; losing either one
// ejects the entity from the group.
func (g *Group2[A, B]) beforeRemove(e Entity, id ComponentID) {
	if id != g.idA && id != g.idB {
		return
	}
	ia, okA := g.storeA.IndexOf(e)
	ib, okB := g.storeB.IndexOf(e)
	if !okA || !okB {
		return
	}
	if ia < g.size && ib < g.size {
		last := g.size - 1
		g.storeA.swap(ia, last)
		g.storeB.swap(ib, last)
		g.size = last
		g.invalidate()
	}
}

// Len reports how many entities currently own both A and B.
func (g *Group2[A, B]) Len() int { return g.size }

// A returns the parallel span of owned A components, restricted to the
// group's boundary.
func (g *Group2[A, B]) A() []A { return g.storeA.Dense()[:g.size] }

// B returns the parallel span of owned B components, aligned index-for-
// index with A().
func (g *Group2[A, B]) B() []B { return g.storeB.Dense()[:g.size] }

// Entities returns the entity owning each aligned (A[i], B[i]) pair.
func (g *Group2[A, B]) Entities() []Entity { return g.storeA.Entities()[:g.size] }

// onSignatureChanged moves e across the group boundary when its membership
// (owns both A and B, or no longer does) changes.
func (g *Group2[A, B]) onSignatureChanged(e Entity, sig Signature) {
	ia, okA := g.storeA.IndexOf(e)
	ib, okB := g.storeB.IndexOf(e)
	if !okA || !okB {
		return
	}
	inGroup := ia < g.size && ib < g.size
	shouldBeInGroup := sig.Contains(g.sig)

	switch {
	case shouldBeInGroup && !inGroup:
		g.storeA.swap(ia, g.size)
		g.storeB.swap(ib, g.size)
		g.size++
		g.invalidate()
	case !shouldBeInGroup && inGroup:
		last := g.size - 1
		g.storeA.swap(ia, last)
		g.storeB.swap(ib, last)
		g.size = last
		g.invalidate()
	}
}

func (g *Group2[A, B]) onEntityDestroyed(Entity) {
	// The coordinator has already removed the destroyed entity's components
	// from both stores by the time groups are notified, shifting anything
	// past the group boundary. Recompute the boundary defensively: a
	// destroyed group member shrinks the dense arrays out from under size.
	if g.size > g.storeA.Len() {
		g.size = g.storeA.Len()
	}
	if g.size > g.storeB.Len() {
		g.size = g.storeB.Len()
	}
	g.invalidate()
}

func (g *Group2[A, B]) invalidate() {
	for _, p := range g.partitions {
		p.dirty = true
	}
}

func (g *Group2[A, B]) rebuildFull() {
	// Snapshot first: onSignatureChanged reorders storeA.Entities() in place
	// as members cross the group boundary, so ranging over it live would
	// skip or revisit entries.
	entities := append([]Entity(nil), g.storeA.Entities()...)
	for _, e := range entities {
		g.onSignatureChanged(e, g.c.Signature(e))
	}
}

// partitionState holds the {startIndex,count} ranges for one partition key
// function, re-sorted lazily on next access after an invalidating change.
type partitionState struct {
	dirty  bool
	ranges map[string]Range
}

// Range describes one contiguous partition's span within the group.
type Range struct {
	StartIndex int
	Count      int
}

// Partition groups the group's entities contiguously by keyFn(B[i]),
// exposing per-key {startIndex, count} ranges. The sort is deferred and
// only re-runs when a relevant insertion/removal has marked it dirty
// (spec §4.2).
func (g *Group2[A, B]) Partition(name string, keyFn func(b B) string) map[string]Range {
	p, ok := g.partitions[name]
	if !ok {
		if g.partitions == nil {
			g.partitions = make(map[string]*partitionState)
		}
		p = &partitionState{dirty: true}
		g.partitions[name] = p
	}
	if p.dirty {
		g.resortForPartition(keyFn)
		p.ranges = computeRanges(g.B(), keyFn)
		p.dirty = false
	}
	return p.ranges
}

// resortForPartition stable-sorts the group's span only by key, moving A's
// owned components in lockstep via swap. The sort is sort.SliceStable, a
// comparison sort (O(n log n)), not a single linear pass.
func (g *Group2[A, B]) resortForPartition(keyFn func(b B) string) {
	n := g.size
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	dense := g.B()
	keys := make([]string, n)
	for i, b := range dense {
		keys[i] = keyFn(b)
	}
	sort.SliceStable(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })

	// Apply the permutation to both stores via a cycle-sort so every
	// element ends at its target position, re-using swap to keep A and B
	// (and the index maps) aligned.
	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		if visited[i] || idx[i] == i {
			visited[i] = true
			continue
		}
		j := i
		for !visited[j] {
			visited[j] = true
			next := idx[j]
			if next == i {
				break
			}
			g.storeA.swap(j, next)
			g.storeB.swap(j, next)
			idx[j] = j
			j = next
		}
	}
}

func computeRanges[B any](dense []B, keyFn func(B) string) map[string]Range {
	ranges := make(map[string]Range)
	if len(dense) == 0 {
		return ranges
	}
	start := 0
	cur := keyFn(dense[0])
	for i := 1; i <= len(dense); i++ {
		var k string
		if i < len(dense) {
			k = keyFn(dense[i])
		}
		if i == len(dense) || k != cur {
			ranges[cur] = Range{StartIndex: start, Count: i - start}
			if i < len(dense) {
				start = i
				cur = k
			}
		}
	}
	return ranges
}
