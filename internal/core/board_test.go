package core

import (
	"errors"
	"testing"
)

func TestBoardAddPreservesOrderAndUniqueIDs(t *testing.T) {
	b := NewBoard()

	names := []string{"Ann", "Bob", "Cid", "Dee", "Eve"}
	seen := make(map[int64]bool)
	for _, name := range names {
		p, err := b.Add(name)
		if err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Count != 0 {
			t.Fatalf("new entry has count %d", p.Count)
		}
	}

	snap := b.Snapshot()
	if len(snap) != len(names) {
		t.Fatalf("snapshot has %d entries, want %d", len(snap), len(names))
	}
	for i, p := range snap {
		if p.Name != names[i] {
			t.Fatalf("entry %d is %q, want %q (order not preserved)", i, p.Name, names[i])
		}
	}
}

func TestBoardAddManyWithinSameMillisecond(t *testing.T) {
	b := NewBoard()

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		p, err := b.Add("x")
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %d after %d adds", p.ID, i)
		}
		seen[p.ID] = true
	}
}

func TestBoardAddTrimsAndRejectsEmptyNames(t *testing.T) {
	b := NewBoard()

	if _, err := b.Add("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatal("rejected add must not append")
	}

	p, err := b.Add("  Bob  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Name != "Bob" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
}

func TestBoardUpdateCountClampsAtZero(t *testing.T) {
	b := NewBoard()
	p, _ := b.Add("Bob")

	for i := 0; i < 3; i++ {
		got, ok := b.UpdateCount(p.ID, false)
		if !ok {
			t.Fatal("entry vanished")
		}
		if got.Count != 0 {
			t.Fatalf("count went negative-ish: %d", got.Count)
		}
	}

	got, _ := b.UpdateCount(p.ID, true)
	if got.Count != 1 {
		t.Fatalf("increment: got %d, want 1", got.Count)
	}
	got, _ = b.UpdateCount(p.ID, false)
	if got.Count != 0 {
		t.Fatalf("decrement: got %d, want 0", got.Count)
	}
}

func TestBoardUpdateCountUnknownID(t *testing.T) {
	b := NewBoard()
	if _, ok := b.UpdateCount(42, true); ok {
		t.Fatal("update of unknown id reported success")
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard()
	ann, _ := b.Add("Ann")
	bob, _ := b.Add("Bob")

	if !b.Remove(ann.ID) {
		t.Fatal("remove of existing entry reported false")
	}
	if b.Remove(ann.ID) {
		t.Fatal("second remove reported true")
	}

	snap := b.Snapshot()
	if len(snap) != 1 || snap[0].ID != bob.ID {
		t.Fatalf("unexpected snapshot after remove: %+v", snap)
	}
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	b := NewBoard()
	p, _ := b.Add("Ann")

	snap := b.Snapshot()
	snap[0].Count = 99

	got, _ := b.UpdateCount(p.ID, true)
	if got.Count != 1 {
		t.Fatalf("mutating a snapshot leaked into the board: count %d", got.Count)
	}
}
