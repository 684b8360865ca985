// Package assets implements a generic reference-counted registry for
// named resources (textures, materials, models), generalizing the
// teacher's per-kind acquire/release slot systems (engine/systems/
// texture.go, material.go) into a single registry parameterized over
// the payload type. Loading itself (decoding a model file, parsing a
// material descriptor) stays the caller's concern: the registry only
// tracks reference counts and the opaque payload a loader function
// produced.
package assets

import (
	"sync"

	"github.com/spaghettifunk/animacore/engine/core"
)

// Handle is an opaque reference into a Registry's slot table. The zero
// Handle is never issued by Acquire, so it can be used as "no asset" by
// callers such as ecs.MeshRenderer.
type Handle uint32

// Loader produces the payload for a not-yet-loaded name. Returning an
// error aborts the Acquire call; nothing is registered.
type Loader[T any] func(name string) (T, error)

type slot[T any] struct {
	name        string
	payload     T
	refCount    uint64
	autoRelease bool
}

// Registry is a name-keyed, reference-counted store of type T assets,
// mirroring the teacher's RegisteredTextures/RegisteredTextureTable pair
// but generic over the payload and without a fixed max-count array (the
// teacher pre-sizes its array to TextureSystemConfig.MaxTextureCount;
// this registry grows a map instead, since spec.md places no cap on
// asset counts, only on live entities).
type Registry[T any] struct {
	mu      sync.Mutex
	load    Loader[T]
	byName  map[string]Handle
	slots   map[Handle]*slot[T]
	nextID  Handle
}

// NewRegistry constructs an empty registry that calls load to produce a
// payload the first time a name is acquired.
func NewRegistry[T any](load Loader[T]) *Registry[T] {
	return &Registry[T]{
		load:   load,
		byName: make(map[string]Handle),
		slots:  make(map[Handle]*slot[T]),
		nextID: 1,
	}
}

// Acquire increments name's reference count, loading it via the
// registry's Loader on first acquisition, and returns its Handle.
// autoRelease is recorded only on first acquisition, matching the
// teacher's TextureSystemAcquire contract.
func (r *Registry[T]) Acquire(name string, autoRelease bool) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.byName[name]; ok {
		r.slots[h].refCount++
		return h, nil
	}

	payload, err := r.load(name)
	if err != nil {
		return 0, core.NewError(core.KindFileNotFound, "assets: load %q: %v", name, err)
	}

	h := r.nextID
	r.nextID++
	r.byName[name] = h
	r.slots[h] = &slot[T]{name: name, payload: payload, refCount: 1, autoRelease: autoRelease}
	return h, nil
}

// Release decrements h's reference count. If it reaches zero and the
// slot was acquired with autoRelease, the slot is evicted immediately;
// the caller is expected to have already released any backing GPU
// resource in Payload before the last Release.
func (r *Registry[T]) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[h]
	if !ok || s.refCount == 0 {
		return
	}
	s.refCount--
	if s.refCount == 0 && s.autoRelease {
		delete(r.byName, s.name)
		delete(r.slots, h)
	}
}

// Payload returns h's stored value and whether h is currently live.
func (r *Registry[T]) Payload(h Handle) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[h]
	if !ok {
		var zero T
		return zero, false
	}
	return s.payload, true
}

// ReferenceCount reports h's current reference count, for tests and
// diagnostics.
func (r *Registry[T]) ReferenceCount(h Handle) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[h]
	if !ok {
		return 0
	}
	return s.refCount
}

// Len reports the number of distinct assets currently registered.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
