package pointer

import "testing"

func TestRegionContains(t *testing.T) {
	r := Region{X: 2, Y: 1, Width: 3, Height: 2}
	inside := [][2]int{{2, 1}, {4, 2}, {3, 1}}
	outside := [][2]int{{1, 1}, {5, 1}, {2, 0}, {2, 3}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Fatalf("expected %v inside %#v", p, r)
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Fatalf("expected %v outside %#v", p, r)
		}
	}
}

func TestRegistryDispatchOrderAndRelease(t *testing.T) {
	reg := NewRegistry()
	var calls []string
	releaseA := reg.Add(func(Event) { calls = append(calls, "a") })
	releaseB := reg.Add(func(Event) { calls = append(calls, "b") })
	if reg.Len() != 2 {
		t.Fatalf("expected 2 listeners, got %d", reg.Len())
	}
	reg.Dispatch(Event{X: 1, Y: 1})
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("unexpected dispatch order %v", calls)
	}

	releaseA()
	releaseA()
	if reg.Len() != 1 {
		t.Fatalf("expected double release to remove exactly one listener, got %d", reg.Len())
	}
	calls = nil
	reg.Dispatch(Event{})
	if len(calls) != 1 || calls[0] != "b" {
		t.Fatalf("expected only b after release, got %v", calls)
	}

	releaseB()
	if reg.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Len())
	}
}

func TestRegistryListenerMayReleaseDuringDispatch(t *testing.T) {
	reg := NewRegistry()
	var release func()
	hits := 0
	release = reg.Add(func(Event) {
		hits++
		release()
	})
	reg.Dispatch(Event{})
	reg.Dispatch(Event{})
	if hits != 1 {
		t.Fatalf("expected listener to fire once, got %d", hits)
	}
}

func TestRegistryIgnoresNilListener(t *testing.T) {
	reg := NewRegistry()
	release := reg.Add(nil)
	release()
	if reg.Len() != 0 {
		t.Fatalf("expected nil listener to be ignored")
	}
}
