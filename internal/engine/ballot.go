package engine

import "errors"

var ErrInvalidChoice = errors.New("choice is not a side of the current duel")
var ErrNotResolved = errors.New("ballot is not resolved")

// Ballot tallies voter choices for one duel. Voters keep the position of
// their first vote, so re-voting overwrites the choice without changing the
// tally order.
type Ballot struct {
	duel  Duel
	order []string          // voter ids in first-vote order
	votes map[string]string // voter id -> chosen side
}

func NewBallot(d Duel) *Ballot {
	return &Ballot{duel: d, votes: make(map[string]string)}
}

// Record sets or overwrites the voter's choice. There is no limit on how
// often a voter may change their mind.
func (b *Ballot) Record(voterID, choice string) error {
	if !b.duel.HasSide(choice) {
		return ErrInvalidChoice
	}
	if _, ok := b.votes[voterID]; !ok {
		b.order = append(b.order, voterID)
	}
	b.votes[voterID] = choice
	return nil
}

// Resolved reports whether every eligible voter has a recorded choice.
// Fewer than two distinct, non-empty eligible ids never resolve by
// consensus.
func (b *Ballot) Resolved(eligible []string) bool {
	distinct := DistinctIDs(eligible)
	if len(distinct) < 2 {
		return false
	}
	for _, id := range distinct {
		if _, ok := b.votes[id]; !ok {
			return false
		}
	}
	return true
}

// Winner returns the side with strictly more votes; on an exact tie the
// side that first reached the leading count wins, keeping outcomes
// deterministic. An explicit tie policy (left preference, weighted creator
// vote) would replace leader().
func (b *Ballot) Winner(eligible []string) (string, error) {
	if !b.Resolved(eligible) {
		return "", ErrNotResolved
	}
	return b.leader(), nil
}

// Votes returns a copy of the recorded choices.
func (b *Ballot) Votes() map[string]string {
	out := make(map[string]string, len(b.votes))
	for id, choice := range b.votes {
		out[id] = choice
	}
	return out
}

// leader walks votes chronologically, counting per side; the side holding
// the strictly greatest count at the end wins, first-seen side keeping the
// lead on ties.
func (b *Ballot) leader() string {
	counts := make(map[string]int, 2)
	var seen []string
	for _, id := range b.order {
		choice := b.votes[id]
		if _, ok := counts[choice]; !ok {
			seen = append(seen, choice)
		}
		counts[choice]++
	}

	winner, best := "", 0
	for _, side := range seen {
		if counts[side] > best {
			winner, best = side, counts[side]
		}
	}
	return winner
}

// DistinctIDs drops empty ids and duplicates, preserving first-seen order.
func DistinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
