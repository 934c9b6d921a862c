package id

import (
	"sync"
	"testing"
)

// --- Provider Tests ---

func TestDefault_YieldsDistinctCanonicalTokens(t *testing.T) {
	seen := make(map[string]bool, 200)
	for i := 0; i < 200; i++ {
		tok := Default()
		if !IsCanonical(tok) {
			t.Fatalf("Default() = %q, not canonical", tok)
		}
		if seen[tok] {
			t.Fatalf("Default() repeated %q", tok)
		}
		seen[tok] = true
	}
}

func TestFixed(t *testing.T) {
	p := Fixed("00000000-0000-4000-a000-000000000000")
	for i := 0; i < 3; i++ {
		if got := p(); got != "00000000-0000-4000-a000-000000000000" {
			t.Errorf("Fixed() call %d = %q", i, got)
		}
	}
}

func TestSequence_Wraps(t *testing.T) {
	p := Sequence("a", "b")
	want := []string{"a", "b", "a", "b"}
	for i, w := range want {
		if got := p(); got != w {
			t.Errorf("call %d = %q, want %q", i, got, w)
		}
	}
}

func TestSequence_EmptyFallsBackToUUID(t *testing.T) {
	p := Sequence()
	if got := p(); !IsCanonical(got) {
		t.Errorf("Sequence() with no tokens = %q, want a canonical UUID", got)
	}
}

func TestSequence_Concurrent(t *testing.T) {
	p := Sequence("x")
	var wg sync.WaitGroup
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if got := p(); got != "x" {
					t.Errorf("got %q, want x", got)
				}
			}
		}()
	}
	wg.Wait()
}

// --- IsCanonical Tests ---

func TestIsCanonical(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"f47ac10b-58cc-4372-a567-0e02b2c3d479", true},
		{"F47AC10B-58CC-4372-A567-0E02B2C3D479", false},
		{"f47ac10b58cc4372a5670e02b2c3d479", false},
		{"{f47ac10b-58cc-4372-a567-0e02b2c3d479}", false},
		{"v1-f47ac10b-58cc-4372-a567-0e02b2c3d479", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsCanonical(tc.in); got != tc.want {
			t.Errorf("IsCanonical(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
