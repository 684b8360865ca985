package ecs

import "testing"

type position struct{ X, Y float32 }
type velocity struct{ X, Y float32 }

func TestCreateAddQueryDestroy(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)
	RegisterComponent[velocity](c)

	e, err := c.CreateEntity()
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}

	if err := AddComponent(c, e, position{X: 1, Y: 2}); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if !HasComponent[position](c, e) {
		t.Fatalf("expected entity to have position after AddComponent")
	}
	if HasComponent[velocity](c, e) {
		t.Fatalf("entity should not have velocity yet")
	}

	p := GetComponent[position](c, e)
	if p == nil || p.X != 1 || p.Y != 2 {
		t.Fatalf("unexpected position component: %+v", p)
	}

	if err := RemoveComponent[position](c, e); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	if HasComponent[position](c, e) {
		t.Fatalf("expected position removed")
	}

	if err := c.DestroyEntity(e); err != nil {
		t.Fatalf("DestroyEntity: %v", err)
	}
	if GetComponent[position](c, e) != nil {
		t.Fatalf("destroyed entity should report no components")
	}
}

func TestAddComponentRejectsDuplicate(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)
	e, _ := c.CreateEntity()

	if err := AddComponent(c, e, position{}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := AddComponent(c, e, position{}); err == nil {
		t.Fatalf("expected error adding component twice")
	}
}

func TestRemoveComponentRejectsAbsent(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)
	e, _ := c.CreateEntity()

	if err := RemoveComponent[position](c, e); err == nil {
		t.Fatalf("expected error removing absent component")
	}
}

func TestTryAddTryRemoveAreIdempotent(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)
	e, _ := c.CreateEntity()

	if err := TryAddComponent(c, e, position{X: 5}); err != nil {
		t.Fatalf("first TryAddComponent: %v", err)
	}
	if err := TryAddComponent(c, e, position{X: 99}); err != nil {
		t.Fatalf("second TryAddComponent should be a no-op, got: %v", err)
	}
	if p := GetComponent[position](c, e); p.X != 5 {
		t.Fatalf("second TryAddComponent should not overwrite, got X=%v", p.X)
	}

	if err := TryRemoveComponent[position](c, e); err != nil {
		t.Fatalf("first TryRemoveComponent: %v", err)
	}
	if err := TryRemoveComponent[position](c, e); err != nil {
		t.Fatalf("second TryRemoveComponent should be a no-op, got: %v", err)
	}
}

func TestDestroyEntityReleasesIDForReuse(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)

	e1, _ := c.CreateEntity()
	if err := c.DestroyEntity(e1); err != nil {
		t.Fatalf("DestroyEntity: %v", err)
	}
	e2, err := c.CreateEntity()
	if err != nil {
		t.Fatalf("CreateEntity after destroy: %v", err)
	}
	if e2 != e1 {
		t.Fatalf("expected entity id %d reused, got %d", e1, e2)
	}
}

func TestDestroyEntityFiresEvent(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)
	e, _ := c.CreateEntity()

	var got Entity
	fired := false
	c.OnEvent(EventEntityDestroyed, func(payload interface{}) {
		fired = true
		got = payload.(Entity)
	})

	if err := c.DestroyEntity(e); err != nil {
		t.Fatalf("DestroyEntity: %v", err)
	}
	c.DispatchEvents()

	if !fired {
		t.Fatalf("expected entity-destroyed event to fire")
	}
	if got != e {
		t.Fatalf("expected event payload %d, got %d", e, got)
	}
}

func TestSingletonRegisterAndMutate(t *testing.T) {
	type worldClock struct{ Frame int }
	c := NewCoordinator()
	RegisterSingleton(c, worldClock{Frame: 0})

	wc := Singleton[worldClock](c)
	if wc == nil {
		t.Fatalf("expected singleton to be registered")
	}
	wc.Frame = 7
	if Singleton[worldClock](c).Frame != 7 {
		t.Fatalf("expected mutation through returned pointer to persist")
	}
}

func TestSystemTracksMatchingEntitiesAsSignaturesChange(t *testing.T) {
	c := NewCoordinator()
	RegisterComponent[position](c)
	RegisterComponent[velocity](c)

	var none Signature
	var need Signature
	need = need.Set(0).Set(1) // position + velocity, assuming registration order above

	sys := c.RegisterSystem("movement", need, none)

	e1, _ := c.CreateEntity()
	e2, _ := c.CreateEntity()

	AddComponent(c, e1, position{})
	if len(sys.Entities()) != 0 {
		t.Fatalf("entity with only position should not match yet")
	}

	AddComponent(c, e1, velocity{})
	if len(sys.Entities()) != 1 || sys.Entities()[0] != e1 {
		t.Fatalf("expected e1 to match after adding velocity, got %v", sys.Entities())
	}

	AddComponent(c, e2, position{})
	AddComponent(c, e2, velocity{})
	if len(sys.Entities()) != 2 {
		t.Fatalf("expected both entities to match, got %v", sys.Entities())
	}

	RemoveComponent[velocity](c, e1)
	if len(sys.Entities()) != 1 || sys.Entities()[0] != e2 {
		t.Fatalf("expected only e2 to remain after e1 loses velocity, got %v", sys.Entities())
	}

	c.DestroyEntity(e2)
	if len(sys.Entities()) != 0 {
		t.Fatalf("expected empty system after destroying last matching entity, got %v", sys.Entities())
	}
}
