package status

import (
	"testing"
)

func TestHubLast(t *testing.T) {
	h := NewHub()
	if _, ok := h.Last(); ok {
		t.Errorf("Last() of new hub reported status")
	}

	h.Info("Copied %d tiles", 2)
	h.Error("Clipboard holds unreadable %q data", "actor")

	s, ok := h.Last()
	if !ok || s.Type != ERROR || s.Message != `Clipboard holds unreadable "actor" data` {
		t.Errorf("Last()=%+v,%v", s, ok)
	}
}
