package main

import "testing"

func TestSizeTrackerFollowsWindowChanges(t *testing.T) {
	s := newSizeTracker(80, 24)

	if w, h, err := s.getSize(); err != nil || w != 80 || h != 24 {
		t.Fatalf("getSize() = (%d, %d, %v), want (80, 24, nil)", w, h, err)
	}

	s.update(120, 40)

	if w, h, err := s.getSize(); err != nil || w != 120 || h != 40 {
		t.Fatalf("getSize() = (%d, %d, %v), want (120, 40, nil)", w, h, err)
	}
}
