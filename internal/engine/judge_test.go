package engine

import (
	"errors"
	"testing"
)

func TestImmediateChoiceDecidesOnFirstCast(t *testing.T) {
	j := NewImmediateChoice(Duel{Left: "a", Right: "b"})

	if j.Decided(nil) {
		t.Fatalf("decided before any cast")
	}
	if err := j.Cast("local", "c"); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("got %v, want ErrInvalidChoice", err)
	}
	if err := j.Cast("local", "b"); err != nil {
		t.Fatalf("cast: %v", err)
	}

	// Eligible voters are irrelevant to the immediate policy; this is
	// not consensus-with-one-voter.
	if !j.Decided(nil) || !j.Decided([]string{}) {
		t.Fatalf("immediate choice should be decided regardless of eligibility")
	}
	winner, err := j.Winner(nil)
	if err != nil || winner != "b" {
		t.Fatalf("winner: got %q, %v", winner, err)
	}

	j.Reset(Duel{Left: "x", Right: "y"})
	if j.Decided(nil) {
		t.Fatalf("reset should clear the decision")
	}
}

func TestConsensusBallotDelegates(t *testing.T) {
	j := NewConsensusBallot(Duel{Left: "a", Right: "b"})
	eligible := []string{"p1", "p2"}

	if err := j.Cast("p1", "a"); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if j.Decided(eligible) {
		t.Fatalf("decided with a missing voter")
	}
	if _, err := j.Winner(eligible); !errors.Is(err, ErrNotResolved) {
		t.Fatalf("got %v, want ErrNotResolved", err)
	}

	if err := j.Cast("p2", "a"); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if !j.Decided(eligible) {
		t.Fatalf("all eligible voted, should be decided")
	}
	winner, err := j.Winner(eligible)
	if err != nil || winner != "a" {
		t.Fatalf("winner: got %q, %v", winner, err)
	}

	j.Reset(Duel{Left: "x", Right: "y"})
	if len(j.Votes()) != 0 {
		t.Fatalf("reset should discard votes, got %v", j.Votes())
	}
}
