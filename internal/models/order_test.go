package models

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateNumber_Format(t *testing.T) {
	n := generateNumber("WC")

	if !strings.HasPrefix(n, "WC"+time.Now().Format("20060102")+"-") {
		t.Errorf("generateNumber = %q, want WC<date>-<suffix>", n)
	}
	if len(n) != len("WC20060102-XXXX") {
		t.Errorf("generateNumber length = %d, want %d", len(n), len("WC20060102-XXXX"))
	}
}

// Numbers generated back to back must differ: the suffix has to be drawn
// per call, not derived from the clock.
func TestGenerateNumber_ConsecutiveCallsDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		n := generateNumber("AF")
		if seen[n] {
			t.Fatalf("duplicate number %q in consecutive calls", n)
		}
		seen[n] = true
	}
}

func TestRandomString_IndependentDraws(t *testing.T) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := randomString(12)
		if len(s) != 12 {
			t.Fatalf("randomString(12) length = %d", len(s))
		}
		for _, c := range s {
			if !strings.ContainsRune(charset, c) {
				t.Fatalf("randomString produced %q outside the charset", c)
			}
		}
		if seen[s] {
			t.Fatalf("duplicate random string %q", s)
		}
		seen[s] = true
	}
}
