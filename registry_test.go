package vecs_test

import (
	"errors"
	"testing"

	"github.com/coldbrewgames/vecs"
)

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }
type health struct{ HP int }
type name struct{ S string }

func TestCreateGetPut(t *testing.T) {
	vecs.Debug = true
	r := vecs.NewRegistry(16)

	h, err := vecs.Create2(r, position{X: 1, Y: 2}, velocity{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("Create2: %v", err)
	}
	if !r.Exists(h) {
		t.Fatal("expected entity to exist")
	}

	p, v, err := vecs.Get2[position, velocity](r, h)
	if err != nil {
		t.Fatalf("Get2: %v", err)
	}
	if p.X != 1 || p.Y != 2 || v.X != 3 || v.Y != 4 {
		t.Fatalf("unexpected component values: %+v %+v", p, v)
	}

	if err := vecs.Put1[health](r, h, health{HP: 10}); err != nil {
		t.Fatalf("Put1: %v", err)
	}
	hp, err := vecs.Get1[health](r, h)
	if err != nil {
		t.Fatalf("Get1 after Put1: %v", err)
	}
	if hp.HP != 10 {
		t.Fatalf("expected HP=10, got %d", hp.HP)
	}

	// Position and velocity must have survived the migration caused by Put1.
	p, v, err = vecs.Get2[position, velocity](r, h)
	if err != nil || p.X != 1 || v.X != 3 {
		t.Fatalf("components lost across migration: p=%+v v=%+v err=%v", p, v, err)
	}
}

func TestPutOverwritesInPlaceWithoutMigration(t *testing.T) {
	r := vecs.NewRegistry(4)
	h, _ := vecs.Create1(r, position{X: 1})
	typesBefore, _ := r.Types(h)

	if err := vecs.Put1[position](r, h, position{X: 99}); err != nil {
		t.Fatalf("Put1: %v", err)
	}
	typesAfter, _ := r.Types(h)
	if len(typesBefore) != len(typesAfter) {
		t.Fatalf("expected no archetype change on overwrite, before=%v after=%v", typesBefore, typesAfter)
	}
	p, _ := vecs.Get1[position](r, h)
	if p.X != 99 {
		t.Fatalf("expected overwritten value, got %+v", p)
	}
}

func TestEraseComponentKeepsEntity(t *testing.T) {
	r := vecs.NewRegistry(4)
	h, _ := vecs.Create2(r, position{X: 1}, velocity{X: 2})

	if err := vecs.Erase1[velocity](r, h); err != nil {
		t.Fatalf("Erase1: %v", err)
	}
	if !r.Exists(h) {
		t.Fatal("entity should still exist after component removal")
	}
	if r.Has(h, vecs.TypeOf[velocity]()) {
		t.Fatal("velocity should have been removed")
	}
	if !r.Has(h, vecs.TypeOf[position]()) {
		t.Fatal("position should have survived")
	}
	if _, err := vecs.Get1[velocity](r, h); !errors.Is(err, vecs.ErrMissingComponent) {
		t.Fatalf("expected ErrMissingComponent, got %v", err)
	}
}

func TestEraseComponentMissingReturnsError(t *testing.T) {
	r := vecs.NewRegistry(4)
	h, _ := vecs.Create1(r, position{})
	if err := vecs.Erase1[velocity](r, h); !errors.Is(err, vecs.ErrMissingComponent) {
		t.Fatalf("expected ErrMissingComponent, got %v", err)
	}
}

func TestEraseEntityInvalidatesHandle(t *testing.T) {
	r := vecs.NewRegistry(4)
	h, _ := vecs.Create1(r, position{})
	if err := r.Erase(h); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if r.Exists(h) {
		t.Fatal("entity should no longer exist")
	}
	if err := r.Erase(h); !errors.Is(err, vecs.ErrStaleHandle) {
		t.Fatalf("expected ErrStaleHandle on double erase, got %v", err)
	}
	if _, err := vecs.Get1[position](r, h); !errors.Is(err, vecs.ErrStaleHandle) {
		t.Fatalf("expected ErrStaleHandle, got %v", err)
	}
}

func TestEraseSwapRemoveKeepsSurvivorReachable(t *testing.T) {
	r := vecs.NewRegistry(4)
	ha, _ := vecs.Create1(r, position{X: 1})
	hb, _ := vecs.Create1(r, position{X: 2})
	hc, _ := vecs.Create1(r, position{X: 3})

	if err := r.Erase(ha); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	// hb or hc may have been swapped into ha's old row; both must still
	// resolve to their own, unchanged values.
	pb, err := vecs.Get1[position](r, hb)
	if err != nil {
		t.Fatalf("Get1(hb): %v", err)
	}
	if pb.X != 2 {
		t.Fatalf("hb should still read X=2, got %v", pb.X)
	}
	pc, err := vecs.Get1[position](r, hc)
	if err != nil {
		t.Fatalf("Get1(hc): %v", err)
	}
	if pc.X != 3 {
		t.Fatalf("hc should still read X=3, got %v", pc.X)
	}
}

func TestClearInvalidatesAllHandlesAndBlocksResurrection(t *testing.T) {
	r := vecs.NewRegistry(4)
	h1, _ := vecs.Create1(r, position{X: 1})
	r.Clear()
	if r.Exists(h1) {
		t.Fatal("handle should be invalid after Clear")
	}
	// A freshly created entity may reuse h1's slot index, but must carry a
	// different generation so the old handle can never resolve to it.
	h2, _ := vecs.Create1(r, position{X: 2})
	if h1.Index == h2.Index && h1.Generation == h2.Generation {
		t.Fatal("post-Clear handle collided with a pre-Clear handle")
	}
	if r.Exists(h1) {
		t.Fatal("old handle must remain invalid even if its index was reissued")
	}
}

func TestDuplicateComponentTypeRejected(t *testing.T) {
	r := vecs.NewRegistry(4)
	_, err := vecs.Create2[position, position](r, position{X: 1}, position{X: 2})
	if !errors.Is(err, vecs.ErrDuplicateType) {
		t.Fatalf("expected ErrDuplicateType, got %v", err)
	}
}

func TestSizeAndZeroComponentEntity(t *testing.T) {
	r := vecs.NewRegistry(4)
	if r.Size() != 0 {
		t.Fatalf("expected empty registry, got size %d", r.Size())
	}
	h, err := r.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !r.Exists(h) {
		t.Fatal("zero-component entity should exist")
	}
	if r.Size() != 1 {
		t.Fatalf("expected size 1, got %d", r.Size())
	}
	types, err := r.Types(h)
	if err != nil || len(types) != 0 {
		t.Fatalf("expected empty type-set, got %v err=%v", types, err)
	}
}

func TestResourcesRoundTrip(t *testing.T) {
	r := vecs.NewRegistry(1)
	res := r.Resources()
	if vecs.HasResource[name](res) {
		t.Fatal("resource should not exist yet")
	}
	vecs.SetResource(res, name{S: "level1"})
	if !vecs.HasResource[name](res) {
		t.Fatal("resource should exist after SetResource")
	}
	got := vecs.GetResource[name](res)
	if got == nil || got.S != "level1" {
		t.Fatalf("unexpected resource value: %+v", got)
	}
	vecs.RemoveResource[name](res)
	if vecs.HasResource[name](res) {
		t.Fatal("resource should be gone after RemoveResource")
	}
}
