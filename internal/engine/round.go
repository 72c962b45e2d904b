package engine

import "errors"

var ErrEmptyRound = errors.New("round needs at least one contestant")

// Round owns one round's duel sequence, the cursor into it, and the winners
// accumulating for the next round.
type Round struct {
	Number    int
	Duels     []Duel
	Cursor    int
	Advancing []string
}

func NewRound(number int, contestants []string) (*Round, error) {
	if len(contestants) == 0 {
		return nil, ErrEmptyRound
	}
	return &Round{Number: number, Duels: MakePairs(contestants)}, nil
}

// Current returns the duel under the cursor; ok is false once the round is
// exhausted.
func (r *Round) Current() (Duel, bool) {
	if r.Cursor >= len(r.Duels) {
		return Duel{}, false
	}
	return r.Duels[r.Cursor], true
}

// Resolve records the winner of the current duel and moves the cursor past
// it. Byes resolve through here too, with the single present side winning.
func (r *Round) Resolve(winner string) {
	r.Stage(winner)
	r.Advance()
}

// Stage appends a winner without moving the cursor. The room flow stages on
// consensus and advances later, once the creator has shown the tally.
func (r *Round) Stage(winner string) {
	r.Advancing = append(r.Advancing, winner)
}

// ReplaceStaged swaps the most recently staged winner. Used when a changed
// vote flips an already-decided duel before the room advances.
func (r *Round) ReplaceStaged(winner string) {
	if len(r.Advancing) > 0 {
		r.Advancing[len(r.Advancing)-1] = winner
	}
}

// Advance moves the cursor past the current duel.
func (r *Round) Advance() {
	r.Cursor++
}

func (r *Round) Complete() bool {
	return r.Cursor >= len(r.Duels)
}
