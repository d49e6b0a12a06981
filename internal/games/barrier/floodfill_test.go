package barrier

import "testing"

func TestReachableOpenField(t *testing.T) {
	f := newField(20, 10)
	marked := reachable(f.w, f.h, f.solid, []cell{{5, 5}})

	for i, m := range marked {
		if !m {
			t.Fatalf("cell %d unreachable in an open field", i)
		}
	}
}

func TestReachableIdempotent(t *testing.T) {
	f := newField(20, 10)
	for y := 0; y < f.h; y++ {
		f.set(10, y, cellWall)
	}
	seeds := []cell{{3, 5}}

	first := reachable(f.w, f.h, f.solid, seeds)
	second := reachable(f.w, f.h, f.solid, seeds)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("fill not idempotent at cell %d", i)
		}
	}
}

func TestReachableStopsAtWall(t *testing.T) {
	f := newField(20, 10)
	for y := 0; y < f.h; y++ {
		f.set(10, y, cellWall)
	}

	marked := reachable(f.w, f.h, f.solid, []cell{{3, 5}})

	if !marked[5*f.w+3] {
		t.Error("seed side should be reachable")
	}
	if marked[5*f.w+15] {
		t.Error("far side of a bisecting wall should be unreachable")
	}
}

func TestReachableNoSeeds(t *testing.T) {
	f := newField(10, 10)
	marked := reachable(f.w, f.h, f.solid, nil)
	for i, m := range marked {
		if m {
			t.Fatalf("cell %d marked with no seeds", i)
		}
	}
}

func TestBuildGrowAndCommit(t *testing.T) {
	f := newField(21, 11)
	b := build{active: true, x: 10, y: 5, vertical: true}

	done := false
	for i := 0; i < 20 && !done; i++ {
		done = b.grow(f, 1)
	}
	if !done {
		t.Fatal("vertical build never reached both edges")
	}

	placed := b.commit(f)
	if placed != f.h {
		t.Errorf("expected %d wall cells, got %d", f.h, placed)
	}
	for y := 0; y < f.h; y++ {
		if f.at(10, y) != cellWall {
			t.Errorf("cell (10,%d) not committed as wall", y)
		}
	}
}

func TestBuildStopsAtExistingWall(t *testing.T) {
	f := newField(21, 11)
	f.set(10, 2, cellWall)
	b := build{active: true, x: 10, y: 5, vertical: true}

	for i := 0; i < 20; i++ {
		if b.grow(f, 1) {
			break
		}
	}
	b.commit(f)

	if f.at(10, 1) == cellWall && f.at(10, 2) != cellWall {
		t.Error("build grew through an existing wall")
	}
	if f.at(10, 3) != cellWall {
		t.Error("build should reach the cell adjacent to the existing wall")
	}
}
