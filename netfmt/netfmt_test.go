package netfmt

import (
	"testing"

	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

func TestParse_S1Trivial(t *testing.T) {
	net, err := Parse("2 1\n1\n2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.N != 2 {
		t.Fatalf("expected n=2, got %d", net.N)
	}
	want := []planner.Comparator{{A: 0, B: 1}}
	if len(net.Comparators) != len(want) || net.Comparators[0] != want[0] {
		t.Fatalf("unexpected comparators: %+v", net.Comparators)
	}
}

func TestParse_S2Bubble3(t *testing.T) {
	net, err := Parse("3 3\n1 2 1\n2 3 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []planner.Comparator{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 1}}
	if len(net.Comparators) != len(want) {
		t.Fatalf("expected %d comparators, got %d", len(want), len(net.Comparators))
	}
	for i := range want {
		if net.Comparators[i] != want[i] {
			t.Fatalf("comparator %d: expected %+v got %+v", i, want[i], net.Comparators[i])
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestParse_NOutOfRange(t *testing.T) {
	if _, err := Parse("1 0\n\n\n"); err == nil {
		t.Fatalf("expected error for n=1")
	}
	if _, err := Parse("65 0\n\n\n"); err == nil {
		t.Fatalf("expected error for n=65")
	}
}

func TestParse_ComparatorOutOfOrder(t *testing.T) {
	if _, err := Parse("4 1\n2\n1\n"); err == nil {
		t.Fatalf("expected error for a>=b")
	}
}

func TestParse_MismatchedCounts(t *testing.T) {
	if _, err := Parse("4 2\n1 2\n3\n"); err == nil {
		t.Fatalf("expected error for mismatched endpoint counts")
	}
}

func TestFormat_RoundTrips(t *testing.T) {
	const text = "4 2\n1 2\n3 4\n"
	net, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Parse(Format(net))
	if err != nil {
		t.Fatalf("unexpected error reparsing: %v", err)
	}
	if again.N != net.N || len(again.Comparators) != len(net.Comparators) {
		t.Fatalf("round trip mismatch: %+v vs %+v", net, again)
	}
	for i := range net.Comparators {
		if again.Comparators[i] != net.Comparators[i] {
			t.Fatalf("round trip comparator %d mismatch: %+v vs %+v", i, net.Comparators[i], again.Comparators[i])
		}
	}
}
