package model

import "testing"

func TestValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		if !ValidStatus(s) {
			t.Fatalf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING", "in progress"} {
		if ValidStatus(s) {
			t.Fatalf("ValidStatus(%q) = true, want false", s)
		}
	}
}
