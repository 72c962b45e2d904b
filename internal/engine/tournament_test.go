package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestTournamentEmptyListFinishesWithNoChampion(t *testing.T) {
	tr := New(nil)

	if !tr.Finished() {
		t.Fatalf("zero contestants should finish immediately")
	}
	if champion, ok := tr.Champion(); ok {
		t.Fatalf("expected no champion, got %q", champion)
	}
	if err := tr.Resolve("a"); !errors.Is(err, ErrFinished) {
		t.Fatalf("Resolve on finished: got %v, want ErrFinished", err)
	}
}

func TestTournamentSingleContestantWinsOutright(t *testing.T) {
	tr := New([]string{"solo"})

	if !tr.Finished() {
		t.Fatalf("single contestant should finish via the opening bye")
	}
	champion, ok := tr.Champion()
	if !ok || champion != "solo" {
		t.Fatalf("champion: got %q (ok=%v), want solo", champion, ok)
	}
}

func TestTournamentTermination(t *testing.T) {
	// Rounds used for n contestants, resolving every duel toward Left:
	// ceil(log2(n)) for n >= 2, one settled round for n == 1.
	cases := []struct {
		contestants int
		wantRounds  int
	}{
		{contestants: 1, wantRounds: 1},
		{contestants: 2, wantRounds: 1},
		{contestants: 3, wantRounds: 2},
		{contestants: 4, wantRounds: 2},
		{contestants: 5, wantRounds: 3},
		{contestants: 8, wantRounds: 3},
		{contestants: 9, wantRounds: 4},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.contestants), func(t *testing.T) {
			items := make([]string, tc.contestants)
			for i := range items {
				items[i] = fmt.Sprintf("c%d", i)
			}

			tr := New(items)
			steps := 0
			for !tr.Finished() {
				d, ok := tr.CurrentDuel()
				if !ok {
					t.Fatalf("running tournament has no current duel")
				}
				if d.Bye {
					t.Fatalf("byes must settle inside the engine, got %+v", d)
				}
				if err := tr.Resolve(d.Left); err != nil {
					t.Fatalf("resolve: %v", err)
				}
				if steps++; steps > tc.contestants {
					t.Fatalf("no termination after %d duels", steps)
				}
			}

			if tr.RoundNumber() != tc.wantRounds {
				t.Fatalf("rounds: got %d, want %d", tr.RoundNumber(), tc.wantRounds)
			}
			if _, ok := tr.Champion(); !ok {
				t.Fatalf("finished tournament without champion for n=%d", tc.contestants)
			}
		})
	}
}

func TestTournamentByeAutoResolves(t *testing.T) {
	// Scenario: ["a","b","c"] pairs into [(a,b), (c,bye)]. Once (a,b)
	// resolves, c advances without any ballot and round 2 begins.
	tr := New([]string{"a", "b", "c"})

	d, ok := tr.CurrentDuel()
	if !ok || d.Left != "a" || d.Right != "b" {
		t.Fatalf("first duel: got %+v", d)
	}

	if err := tr.Resolve("a"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if tr.RoundNumber() != 2 {
		t.Fatalf("round: got %d, want 2", tr.RoundNumber())
	}
	d, ok = tr.CurrentDuel()
	if !ok || d.Left != "a" || d.Right != "c" {
		t.Fatalf("round 2 duel: got %+v, want a vs c", d)
	}

	if err := tr.Resolve("c"); err != nil {
		t.Fatalf("resolve final: %v", err)
	}
	champion, ok := tr.Champion()
	if !ok || champion != "c" {
		t.Fatalf("champion: got %q, want c", champion)
	}
}

func TestTournamentRejectsNonSideWinner(t *testing.T) {
	tr := New([]string{"a", "b"})

	if err := tr.Resolve("z"); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("got %v, want ErrInvalidChoice", err)
	}
}

func TestTournamentStagedAdvanceFlow(t *testing.T) {
	// The room path: consensus stages the winner, then an explicit
	// advance moves the cursor.
	tr := New([]string{"a", "b", "c", "d"})

	if err := tr.Stage("b"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if got := tr.Advancing(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("advancing: got %v, want [b]", got)
	}
	if tr.PairIndex() != 0 {
		t.Fatalf("stage must not move the cursor, index=%d", tr.PairIndex())
	}

	// A flipped consensus before the advance replaces, never appends.
	if err := tr.ReplaceStaged("a"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := tr.Advancing(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("advancing after replace: got %v, want [a]", got)
	}

	if err := tr.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if tr.PairIndex() != 1 {
		t.Fatalf("pair index: got %d, want 1", tr.PairIndex())
	}

	if err := tr.Stage("c"); err != nil {
		t.Fatalf("stage second: %v", err)
	}
	if err := tr.Advance(); err != nil {
		t.Fatalf("advance second: %v", err)
	}

	if tr.RoundNumber() != 2 {
		t.Fatalf("round: got %d, want 2", tr.RoundNumber())
	}
	d, ok := tr.CurrentDuel()
	if !ok || d.Left != "a" || d.Right != "c" {
		t.Fatalf("round 2 duel: got %+v, want a vs c", d)
	}
}

func TestTournamentFinishedIsImmutable(t *testing.T) {
	tr := New([]string{"a", "b"})
	if err := tr.Resolve("a"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !tr.Finished() {
		t.Fatalf("expected finished")
	}

	if err := tr.Resolve("a"); !errors.Is(err, ErrFinished) {
		t.Fatalf("Resolve: got %v, want ErrFinished", err)
	}
	if err := tr.Stage("a"); !errors.Is(err, ErrFinished) {
		t.Fatalf("Stage: got %v, want ErrFinished", err)
	}
	if err := tr.Advance(); !errors.Is(err, ErrFinished) {
		t.Fatalf("Advance: got %v, want ErrFinished", err)
	}
	if tr.Status() != StatusFinished {
		t.Fatalf("status: got %s, want %s", tr.Status(), StatusFinished)
	}
}

func TestRoundRequiresContestants(t *testing.T) {
	if _, err := NewRound(1, nil); !errors.Is(err, ErrEmptyRound) {
		t.Fatalf("got %v, want ErrEmptyRound", err)
	}
}
