package core

import "testing"

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	a := NewClient("a")
	b := NewClient("b")

	sa := r.Register(a)
	sb := r.Register(b)

	if sa.ID == "" || sb.ID == "" || sa.ID == sb.ID {
		t.Fatalf("session ids must be unique and non-empty: %q %q", sa.ID, sb.ID)
	}
	if sa.Authenticated() || sb.Authenticated() {
		t.Fatal("new sessions must start unauthenticated")
	}
	if r.Count() != 2 || r.AuthenticatedCount() != 0 {
		t.Fatalf("counts: %d/%d", r.Count(), r.AuthenticatedCount())
	}

	r.SetAuthenticated(a)
	if !r.IsAuthenticated(a) || r.IsAuthenticated(b) {
		t.Fatal("authentication flag on wrong session")
	}
	if r.AuthenticatedCount() != 1 {
		t.Fatalf("authenticated count: %d", r.AuthenticatedCount())
	}

	if !r.Deregister(a) {
		t.Fatal("deregister of live session reported false")
	}
	if r.Deregister(a) {
		t.Fatal("deregister must be idempotent")
	}
	if r.Count() != 1 || r.AuthenticatedCount() != 0 {
		t.Fatalf("counts after deregister: %d/%d", r.Count(), r.AuthenticatedCount())
	}
	if r.IsAuthenticated(a) {
		t.Fatal("deregistered session still reads authenticated")
	}
}

func TestRegistryUnknownClient(t *testing.T) {
	r := NewRegistry()
	ghost := NewClient("ghost")

	if r.IsAuthenticated(ghost) {
		t.Fatal("unknown client reads authenticated")
	}
	r.SetAuthenticated(ghost) // must be a no-op
	if r.Count() != 0 {
		t.Fatal("SetAuthenticated created a session")
	}
}

func TestGate(t *testing.T) {
	r := NewRegistry()
	g := NewGate(r)
	c := NewClient("c")
	r.Register(c)

	if err := g.Check(c, CommandAddPerson); err != nil {
		t.Fatalf("ADD_PERSON must be open: %v", err)
	}
	if err := g.Check(c, CommandAuthenticate); err != nil {
		t.Fatalf("AUTHENTICATE must never be gated: %v", err)
	}

	for _, kind := range []CommandKind{CommandUpdateCount, CommandRemovePerson} {
		denial := g.Check(c, kind)
		if denial == nil {
			t.Fatalf("%v allowed without authentication", kind)
		}
		if denial.Code != ErrCodeAuthRequired || denial.Message != MsgAuthRequired {
			t.Fatalf("unexpected denial: %+v", denial)
		}
	}

	r.SetAuthenticated(c)
	for _, kind := range []CommandKind{CommandUpdateCount, CommandRemovePerson} {
		if err := g.Check(c, kind); err != nil {
			t.Fatalf("%v denied for authenticated session: %v", kind, err)
		}
	}
}
