package engine

// DuelJudge abstracts how a non-bye duel gets decided: one immediate choice
// in local play, consensus among eligible voters in a room. Both drive the
// same Tournament.
type DuelJudge interface {
	// Cast records voterID's choice for the current duel.
	Cast(voterID, choice string) error
	// Decided reports whether the outcome is settled for the given
	// eligible voter ids.
	Decided(eligible []string) bool
	// Winner returns the decided side; ErrNotResolved before Decided.
	Winner(eligible []string) (string, error)
	// Reset rebinds the judge to the next duel, discarding prior choices.
	Reset(d Duel)
}

// ImmediateChoice resolves a duel the instant a single choice is recorded.
// This is a distinct policy, not consensus with one voter; eligible ids are
// ignored entirely.
type ImmediateChoice struct {
	duel   Duel
	choice string
	cast   bool
}

func NewImmediateChoice(d Duel) *ImmediateChoice {
	return &ImmediateChoice{duel: d}
}

func (c *ImmediateChoice) Cast(_, choice string) error {
	if !c.duel.HasSide(choice) {
		return ErrInvalidChoice
	}
	c.choice = choice
	c.cast = true
	return nil
}

func (c *ImmediateChoice) Decided(_ []string) bool { return c.cast }

func (c *ImmediateChoice) Winner(_ []string) (string, error) {
	if !c.cast {
		return "", ErrNotResolved
	}
	return c.choice, nil
}

func (c *ImmediateChoice) Reset(d Duel) {
	*c = ImmediateChoice{duel: d}
}

// ConsensusBallot decides a duel once every eligible voter has voted,
// delegating tallying and the tie-break to Ballot.
type ConsensusBallot struct {
	ballot *Ballot
}

func NewConsensusBallot(d Duel) *ConsensusBallot {
	return &ConsensusBallot{ballot: NewBallot(d)}
}

func (c *ConsensusBallot) Cast(voterID, choice string) error {
	return c.ballot.Record(voterID, choice)
}

func (c *ConsensusBallot) Decided(eligible []string) bool {
	return c.ballot.Resolved(eligible)
}

func (c *ConsensusBallot) Winner(eligible []string) (string, error) {
	return c.ballot.Winner(eligible)
}

func (c *ConsensusBallot) Reset(d Duel) {
	c.ballot = NewBallot(d)
}

// Votes exposes the recorded choices for state snapshots.
func (c *ConsensusBallot) Votes() map[string]string {
	return c.ballot.Votes()
}
