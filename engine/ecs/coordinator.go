package ecs

import (
	"fmt"
	"reflect"
)

// registeredType tracks the bit id and backing store for one component type.
type registeredType struct {
	id    ComponentID
	store componentStore
}

// queuedEvent is a deferred notification; DispatchEvents flushes these to
// listeners in emission order.
type queuedEvent struct {
	name    string
	payload interface{}
}

// Coordinator owns every component store, system and group, and is the
// single point of mutation for ECS state (spec §4.1). All operations are
// synchronous and intended to run on one thread.
type Coordinator struct {
	entities   *entityAllocator
	signatures map[Entity]Signature

	typesByGo map[reflect.Type]*registeredType
	nextBit   ComponentID

	singletons map[reflect.Type]interface{}

	systems []*System
	groups  []groupRefresher

	listeners map[string][]func(interface{})
	queue     []queuedEvent
}

// groupRefresher lets the coordinator notify every registered group without
// the coordinator needing to know the group's owned/non-owned type list.
// beforeRemove must run before the named component is swap-removed from its
// store: it evicts e from the group's front partition first, so the
// store's swap-with-tail cannot pull a non-member entity into a boundary
// slot the group still considers its own.
type groupRefresher interface {
	beforeRemove(e Entity, id ComponentID)
	onSignatureChanged(e Entity, sig Signature)
	onEntityDestroyed(e Entity)
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		entities:   newEntityAllocator(),
		signatures: make(map[Entity]Signature),
		typesByGo:  make(map[reflect.Type]*registeredType),
		singletons: make(map[reflect.Type]interface{}),
		listeners:  make(map[string][]func(interface{})),
	}
}

// RegisterComponent assigns T a stable bit position and backing store.
// Registering a type after entities exist is allowed; those entities simply
// have the new bit cleared until a component is added.
func RegisterComponent[T any](c *Coordinator) ComponentID {
	t := reflect.TypeFor[T]()
	if rt, ok := c.typesByGo[t]; ok {
		return rt.id
	}
	id := c.nextBit
	c.nextBit++
	c.typesByGo[t] = &registeredType{id: id, store: newStore[T]()}
	return id
}

func storeFor[T any](c *Coordinator) (*Store[T], ComponentID, bool) {
	t := reflect.TypeFor[T]()
	rt, ok := c.typesByGo[t]
	if !ok {
		return nil, 0, false
	}
	return rt.store.(*Store[T]), rt.id, true
}

// RegisterSingleton creates the single instance of T, owned by the
// coordinator for its lifetime.
func RegisterSingleton[T any](c *Coordinator, initial T) {
	c.singletons[reflect.TypeFor[T]()] = &initial
}

// Singleton returns a pointer to the one instance of T, or nil if T was
// never registered as a singleton.
func Singleton[T any](c *Coordinator) *T {
	v, ok := c.singletons[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

func (c *Coordinator) CreateEntity() (Entity, error) {
	e, err := c.entities.acquire()
	if err != nil {
		return InvalidEntity, err
	}
	c.signatures[e] = Signature{}
	return e, nil
}

// DestroyEntity removes every component the entity carries (O(bits set)),
// returns the id to the free list, and fires the "entity-destroyed" event.
func (c *Coordinator) DestroyEntity(e Entity) error {
	sig, ok := c.signatures[e]
	if !ok {
		return fmt.Errorf("ecs: destroy of unknown entity %d", e)
	}
	for _, rt := range c.typesByGo {
		if sig.Has(rt.id) {
			for _, g := range c.groups {
				g.beforeRemove(e, rt.id)
			}
			rt.store.remove(e)
		}
	}
	delete(c.signatures, e)
	c.entities.release(e)

	for _, g := range c.groups {
		g.onEntityDestroyed(e)
	}
	for _, s := range c.systems {
		s.remove(e)
	}
	c.EmitEvent(EventEntityDestroyed, e)
	return nil
}

// EventEntityDestroyed is the coordinator-scoped event name fired from
// DestroyEntity; listeners receive the destroyed Entity as payload.
const EventEntityDestroyed = "ecs.entity-destroyed"

// AddComponent inserts v as e's T component. Fails with an error if e
// already has T.
func AddComponent[T any](c *Coordinator, e Entity, v T) error {
	store, id, ok := storeFor[T](c)
	if !ok {
		return fmt.Errorf("ecs: component type %T was never registered", v)
	}
	sig, ok := c.signatures[e]
	if !ok {
		return fmt.Errorf("ecs: add on unknown entity %d", e)
	}
	if sig.Has(id) {
		return fmt.Errorf("ecs: entity %d already has component %T: already-present", e, v)
	}
	store.Insert(e, v)
	sig = sig.Set(id)
	c.signatures[e] = sig
	c.notify(e, sig)
	return nil
}

// TryAddComponent is the idempotent variant: adding twice is a silent no-op.
func TryAddComponent[T any](c *Coordinator, e Entity, v T) error {
	if HasComponent[T](c, e) {
		return nil
	}
	return AddComponent(c, e, v)
}

// RemoveComponent swap-removes e's T component. Fails if e lacks T.
func RemoveComponent[T any](c *Coordinator, e Entity) error {
	store, id, ok := storeFor[T](c)
	if !ok {
		var zero T
		return fmt.Errorf("ecs: component type %T was never registered", zero)
	}
	sig, ok := c.signatures[e]
	if !ok {
		return fmt.Errorf("ecs: remove on unknown entity %d", e)
	}
	if !sig.Has(id) {
		var zero T
		return fmt.Errorf("ecs: entity %d lacks component %T: absent", e, zero)
	}
	for _, g := range c.groups {
		g.beforeRemove(e, id)
	}
	store.remove(e)
	sig = sig.Clear(id)
	c.signatures[e] = sig
	c.notify(e, sig)
	return nil
}

// TryRemoveComponent is the idempotent variant: removing an absent
// component is a silent no-op.
func TryRemoveComponent[T any](c *Coordinator, e Entity) error {
	if !HasComponent[T](c, e) {
		return nil
	}
	return RemoveComponent[T](c, e)
}

func HasComponent[T any](c *Coordinator, e Entity) bool {
	_, id, ok := storeFor[T](c)
	if !ok {
		return false
	}
	sig, ok := c.signatures[e]
	if !ok {
		return false
	}
	return sig.Has(id)
}

// GetComponent returns a pointer into the dense store, or nil if e lacks T.
func GetComponent[T any](c *Coordinator, e Entity) *T {
	store, _, ok := storeFor[T](c)
	if !ok {
		return nil
	}
	v, _ := store.Get(e)
	return v
}

// ComponentStore exposes the raw dense store for T, for systems/groups that
// need direct span access.
func ComponentStore[T any](c *Coordinator) *Store[T] {
	store, _, ok := storeFor[T](c)
	if !ok {
		return nil
	}
	return store
}

func (c *Coordinator) Signature(e Entity) Signature {
	return c.signatures[e]
}

func (c *Coordinator) notify(e Entity, sig Signature) {
	for _, s := range c.systems {
		s.onSignatureChanged(e, sig)
	}
	for _, g := range c.groups {
		g.onSignatureChanged(e, sig)
	}
}

// EmitEvent queues a coordinator-scoped event for the next DispatchEvents
// call, distinct from the engine-wide core.EventFire window/input bus.
func (c *Coordinator) EmitEvent(name string, payload interface{}) {
	c.queue = append(c.queue, queuedEvent{name: name, payload: payload})
}

// OnEvent registers fn to run for every future event named name.
func (c *Coordinator) OnEvent(name string, fn func(interface{})) {
	c.listeners[name] = append(c.listeners[name], fn)
}

// DispatchEvents flushes every queued event to its listeners, in emission
// order, then clears the queue.
func (c *Coordinator) DispatchEvents() {
	q := c.queue
	c.queue = nil
	for _, ev := range q {
		for _, fn := range c.listeners[ev.name] {
			fn(ev.payload)
		}
	}
}
