package vecs_test

import (
	"testing"

	"github.com/coldbrewgames/vecs"
)

// These tests exercise column through the public Create/Get/Put/Erase
// surface, since column itself is unexported.

func TestColumnGrowsAcrossManyPushes(t *testing.T) {
	r := vecs.NewRegistry(1)
	const n = 100
	handles := make([]vecs.Handle, 0, n)
	for i := 0; i < n; i++ {
		h, err := vecs.Create1(r, position{X: float64(i)})
		if err != nil {
			t.Fatalf("Create1(%d): %v", i, err)
		}
		handles = append(handles, h)
	}
	for i, h := range handles {
		p, err := vecs.Get1[position](r, h)
		if err != nil {
			t.Fatalf("Get1(%d): %v", i, err)
		}
		if p.X != float64(i) {
			t.Fatalf("entity %d: expected X=%d, got %v", i, i, p.X)
		}
	}
}

func TestColumnSwapRemoveDoesNotDisturbOtherRows(t *testing.T) {
	r := vecs.NewRegistry(4)
	var handles []vecs.Handle
	for i := 0; i < 5; i++ {
		h, _ := vecs.Create1(r, position{X: float64(i)})
		handles = append(handles, h)
	}

	// Erase the middle entity; everything else must keep its own value.
	if err := r.Erase(handles[2]); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	for i, h := range handles {
		if i == 2 {
			continue
		}
		p, err := vecs.Get1[position](r, h)
		if err != nil {
			t.Fatalf("Get1(%d) after erase of a different entity: %v", i, err)
		}
		if p.X != float64(i) {
			t.Fatalf("entity %d: expected X=%d after unrelated erase, got %v", i, i, p.X)
		}
	}
	if r.Exists(handles[2]) {
		t.Fatal("erased entity should no longer exist")
	}
}

func TestColumnMoveAcrossMigrationPreservesValue(t *testing.T) {
	r := vecs.NewRegistry(4)
	h, _ := vecs.Create1(r, position{X: 7, Y: 8})
	if err := vecs.Put1[velocity](r, h, velocity{X: 1, Y: 2}); err != nil {
		t.Fatalf("Put1: %v", err)
	}
	p, v, err := vecs.Get2[position, velocity](r, h)
	if err != nil {
		t.Fatalf("Get2: %v", err)
	}
	if p.X != 7 || p.Y != 8 {
		t.Fatalf("position should survive the column move across migration, got %+v", p)
	}
	if v.X != 1 || v.Y != 2 {
		t.Fatalf("velocity should be set on the destination archetype, got %+v", v)
	}
}
