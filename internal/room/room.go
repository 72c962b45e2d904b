package room

import (
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pickone/faceoff/internal/engine"
)

// Player is one roster entry. IDs are caller-supplied and opaque; the
// display name may change on re-join.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is a shared, multi-participant tournament session. Every mutation
// runs under mu and bumps the version; snapshots are deep copies, so
// arbitrarily frequent polling never observes a partial write.
type Room struct {
	mu        sync.Mutex
	id        string
	creatorID string
	items     []string
	players   []Player
	t         *engine.Tournament
	judge     *engine.ConsensusBallot
	ready     bool
	version   int
	updatedAt time.Time
	watchers  map[chan Snapshot]struct{}
	log       *zap.Logger
}

// New builds a room over items paired in order (no shuffle; sampling and
// shuffling are the client's step). The roster starts with the creator.
func New(id string, items []string, creator Player, log *zap.Logger) *Room {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Room{
		id:        id,
		creatorID: creator.ID,
		items:     slices.Clone(items),
		players:   []Player{creator},
		t:         engine.New(items),
		watchers:  make(map[chan Snapshot]struct{}),
		updatedAt: time.Now(),
		log:       log,
	}
	d, _ := r.t.CurrentDuel()
	r.judge = engine.NewConsensusBallot(d)
	return r
}

func (r *Room) ID() string { return r.id }

// LastActive reports when the room last changed, for idle eviction.
func (r *Room) LastActive() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updatedAt
}

// Join adds p to the roster, or updates the display name in place when the
// id is already present. Joining mid-round is always legal; the newcomer
// becomes eligible for the current duel onward.
func (r *Room) Join(p Player) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if r.players[i].ID == p.ID {
			if p.Name != "" {
				r.players[i].Name = p.Name
			}
			return r.commitLocked()
		}
	}
	r.players = append(r.players, p)
	return r.commitLocked()
}

// Vote records the player's choice for the current duel. When every
// distinct roster id has voted, the winner is staged for the next round and
// the ready flag is set; the duel pointer stays put until the creator
// advances, so clients can display the tally first. A changed vote after
// consensus replaces the staged winner rather than appending a second one.
func (r *Room) Vote(playerID, choice string) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.t.Finished() {
		return Snapshot{}, engine.ErrFinished
	}
	if err := r.judge.Cast(playerID, choice); err != nil {
		return Snapshot{}, err
	}

	eligible := r.rosterIDsLocked()
	if r.judge.Decided(eligible) {
		winner, err := r.judge.Winner(eligible)
		if err == nil {
			if r.ready {
				_ = r.t.ReplaceStaged(winner)
			} else {
				_ = r.t.Stage(winner)
				r.ready = true
			}
			r.log.Debug("duel decided",
				zap.String("room", r.id),
				zap.String("winner", winner),
				zap.Int("pairIndex", r.t.PairIndex()))
		}
	}
	return r.commitLocked(), nil
}

// Advance moves the room past the decided duel. Creator-only and gated on
// the ready flag; round transitions (including byes and the final
// champion) settle inside the engine, after which the ballot resets for
// the new current duel.
func (r *Room) Advance(playerID string) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerID != r.creatorID {
		return Snapshot{}, ErrNotCreator
	}
	if r.t.Finished() {
		return Snapshot{}, engine.ErrFinished
	}
	if !r.ready {
		return Snapshot{}, ErrNotReady
	}

	r.ready = false
	if err := r.t.Advance(); err != nil {
		return Snapshot{}, err
	}
	d, _ := r.t.CurrentDuel()
	r.judge.Reset(d)
	return r.commitLocked(), nil
}

// State returns a consistent read-only snapshot; repeated calls with no
// intervening mutation are identical.
func (r *Room) State() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Watch registers a snapshot channel that receives the current state
// immediately and every committed change after it. Slow watchers are
// dropped rather than allowed to block the room.
func (r *Room) Watch() chan Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan Snapshot, 8)
	r.watchers[ch] = struct{}{}
	ch <- r.snapshotLocked()
	return ch
}

func (r *Room) Unwatch(ch chan Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.watchers[ch]; ok {
		delete(r.watchers, ch)
		close(ch)
	}
}

// Close drops all watchers. Called when the hub evicts the room.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.watchers {
		delete(r.watchers, ch)
		close(ch)
	}
}

func (r *Room) rosterIDsLocked() []string {
	ids := make([]string, 0, len(r.players))
	for _, p := range r.players {
		ids = append(ids, p.ID)
	}
	return engine.DistinctIDs(ids)
}

func (r *Room) commitLocked() Snapshot {
	r.version++
	r.updatedAt = time.Now()
	snap := r.snapshotLocked()
	r.broadcastLocked(snap)
	return snap
}

func (r *Room) broadcastLocked(snap Snapshot) {
	for ch := range r.watchers {
		select {
		case ch <- snap:
		default:
			// Watcher is slow or full; drop it.
			delete(r.watchers, ch)
			close(ch)
		}
	}
}
