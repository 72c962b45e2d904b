package room

import (
	"slices"

	"github.com/pickone/faceoff/internal/engine"
)

// Snapshot is a read-only view of a room, shaped like the wire object
// clients render. The current duel is always Pairs[PairIndex]; an
// out-of-range index or the Finished flag are terminal states.
type Snapshot struct {
	ID          string            `json:"id"`
	CreatorID   string            `json:"creatorId"`
	Players     []Player          `json:"players"`
	Items       []string          `json:"items"`
	Pairs       []engine.Duel     `json:"pairs"`
	PairIndex   int               `json:"pairIndex"`
	Votes       map[string]string `json:"votes"`
	NextRound   []string          `json:"nextRoundPlayers"`
	RoundNumber int               `json:"roundNumber"`
	Finished    bool              `json:"finished"`
	Ready       bool              `json:"ready"`
	Champion    string            `json:"champion,omitempty"`
	Version     int               `json:"version"`
	UpdatedAt   int64             `json:"updatedAt"` // unix milliseconds
}

func (r *Room) snapshotLocked() Snapshot {
	champion, _ := r.t.Champion()
	return Snapshot{
		ID:          r.id,
		CreatorID:   r.creatorID,
		Players:     slices.Clone(r.players),
		Items:       emptyNotNil(slices.Clone(r.items)),
		Pairs:       emptyNotNil(r.t.Pairs()),
		PairIndex:   r.t.PairIndex(),
		Votes:       r.judge.Votes(),
		NextRound:   emptyNotNil(r.t.Advancing()),
		RoundNumber: r.t.RoundNumber(),
		Finished:    r.t.Finished(),
		Ready:       r.ready,
		Champion:    champion,
		Version:     r.version,
		UpdatedAt:   r.updatedAt.UnixMilli(),
	}
}

// emptyNotNil keeps empty collections marshaling as [] rather than null.
func emptyNotNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
