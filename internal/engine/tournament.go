package engine

import (
	"errors"
	"slices"
)

var ErrFinished = errors.New("tournament already finished")

type Status string

const (
	StatusAwaitingResult Status = "awaiting_result"
	StatusRoundComplete  Status = "round_complete"
	StatusFinished       Status = "finished"
)

// Tournament sequences single-elimination rounds until one contestant
// remains. It is shared by both deployment shapes; only who decides a
// non-bye duel differs (see DuelJudge).
type Tournament struct {
	round       *Round
	finished    bool
	champion    string
	hasChampion bool
}

// New builds a tournament over items in the given order. An empty item list
// yields a tournament that is already finished, with no champion.
func New(items []string) *Tournament {
	t := &Tournament{}
	if len(items) == 0 {
		t.finished = true
		return t
	}
	t.round, _ = NewRound(1, items)
	t.settle()
	return t
}

// Resolve decides the current duel in winner's favor and advances past it,
// driving any round transition. The local shape calls this the instant its
// single decision-maker picks.
func (t *Tournament) Resolve(winner string) error {
	if t.finished {
		return ErrFinished
	}
	d, ok := t.round.Current()
	if !ok || !d.HasSide(winner) {
		return ErrInvalidChoice
	}
	t.round.Resolve(winner)
	t.settle()
	return nil
}

// Stage appends the consensus winner for the current duel without moving
// the cursor, so the tally can be displayed before the room moves on.
func (t *Tournament) Stage(winner string) error {
	if t.finished {
		return ErrFinished
	}
	t.round.Stage(winner)
	return nil
}

// ReplaceStaged swaps a winner staged by Stage, for a changed vote flipping
// the outcome before Advance.
func (t *Tournament) ReplaceStaged(winner string) error {
	if t.finished {
		return ErrFinished
	}
	t.round.ReplaceStaged(winner)
	return nil
}

// Advance moves past the current duel, then settles byes and completed
// rounds until a votable duel is reached or the tournament finishes.
func (t *Tournament) Advance() error {
	if t.finished {
		return ErrFinished
	}
	t.round.Advance()
	t.settle()
	return nil
}

// settle resolves any run of byes and drives round transitions. Byes need
// no ballot and no ready gate; a completed round either crowns a champion
// (<=1 advancing) or re-pairs the winners into the next round, discarding
// prior ballots (held outside the engine, reset by the caller's judge).
func (t *Tournament) settle() {
	for !t.finished {
		d, ok := t.round.Current()
		if !ok {
			t.completeRound()
			continue
		}
		if !d.Bye {
			return
		}
		t.round.Resolve(d.Left)
	}
}

func (t *Tournament) completeRound() {
	advancing := t.round.Advancing
	if len(advancing) <= 1 {
		t.finished = true
		if len(advancing) == 1 {
			t.champion = advancing[0]
			t.hasChampion = true
		}
		return
	}
	// len(advancing) >= 2, so NewRound cannot fail.
	t.round, _ = NewRound(t.round.Number+1, advancing)
}

func (t *Tournament) Status() Status {
	switch {
	case t.finished:
		return StatusFinished
	case t.round.Complete():
		return StatusRoundComplete
	default:
		return StatusAwaitingResult
	}
}

func (t *Tournament) Finished() bool { return t.finished }

// Champion returns the sole surviving contestant; ok is false while the
// tournament runs and for the degenerate zero-contestant case.
func (t *Tournament) Champion() (string, bool) {
	return t.champion, t.hasChampion
}

// CurrentDuel returns the duel awaiting a result, if any.
func (t *Tournament) CurrentDuel() (Duel, bool) {
	if t.finished || t.round == nil {
		return Duel{}, false
	}
	return t.round.Current()
}

func (t *Tournament) RoundNumber() int {
	if t.round == nil {
		return 1
	}
	return t.round.Number
}

func (t *Tournament) PairIndex() int {
	if t.round == nil {
		return 0
	}
	return t.round.Cursor
}

func (t *Tournament) Pairs() []Duel {
	if t.round == nil {
		return []Duel{}
	}
	return slices.Clone(t.round.Duels)
}

// Advancing returns a copy of the winners accumulated for the next round.
func (t *Tournament) Advancing() []string {
	if t.round == nil {
		return []string{}
	}
	return slices.Clone(t.round.Advancing)
}
