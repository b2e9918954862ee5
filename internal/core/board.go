package core

import (
	"strings"
	"time"
)

// Person is a named counter on the board.
type Person struct {
	ID    int64
	Name  string
	Count int
}

// Board holds the ordered collection of counters. It is owned by the
// hub goroutine and must not be touched from anywhere else.
type Board struct {
	people []Person
	lastID int64
}

// NewBoard constructs an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Add appends a new counter with the trimmed name and a zero count.
func (b *Board) Add(name string) (Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Person{}, ErrEmptyName
	}
	p := Person{
		ID:   b.nextID(),
		Name: name,
	}
	b.people = append(b.people, p)
	return p, nil
}

// UpdateCount increments or decrements the counter with the given id.
// Decrements clamp at zero. Reports false when the id is unknown.
func (b *Board) UpdateCount(id int64, increment bool) (Person, bool) {
	for i := range b.people {
		if b.people[i].ID != id {
			continue
		}
		if increment {
			b.people[i].Count++
		} else if b.people[i].Count > 0 {
			b.people[i].Count--
		}
		return b.people[i], true
	}
	return Person{}, false
}

// Remove deletes the counter with the given id, reporting whether it existed.
func (b *Board) Remove(id int64) bool {
	for i := range b.people {
		if b.people[i].ID == id {
			b.people = append(b.people[:i], b.people[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current entries in insertion order.
func (b *Board) Snapshot() []Person {
	out := make([]Person, len(b.people))
	copy(out, b.people)
	return out
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.people)
}

// nextID issues a wall-clock id, bumped past the last issued one so that
// two entries created within the same millisecond never collide.
func (b *Board) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	return id
}
