package hub

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pickone/faceoff/internal/room"
)

type Msg interface{ isHubMsg() }

type CreateRoom struct {
	ID      string // optional; generated on collision-checked retry when empty
	Items   []string
	Creator room.Player
	Reply   chan CreateReply
}

type CreateReply struct {
	Room *room.Room
	Err  error
}

type GetRoom struct {
	ID    string
	Reply chan *room.Room
}

type RemoveRoom struct{ ID string }

type Shutdown struct{}

func (CreateRoom) isHubMsg() {}
func (GetRoom) isHubMsg()    {}
func (RemoveRoom) isHubMsg() {}
func (Shutdown) isHubMsg()   {}

// Hub owns the table of live rooms. A single goroutine serializes table
// access; rooms carry their own locks, so operations on different rooms
// never contend. Rooms are volatile: nothing survives process exit, and
// idle rooms are reaped when an idle timeout is configured.
type Hub struct {
	inbox     chan Msg
	rooms     map[string]*room.Room
	idleAfter time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	log       *zap.Logger
}

// New starts the hub loop. idleAfter <= 0 disables idle-room eviction.
func New(parent context.Context, idleAfter time.Duration, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:     make(chan Msg, 64),
		rooms:     make(map[string]*room.Room),
		idleAfter: idleAfter,
		ctx:       ctx,
		cancel:    cancel,
		log:       log,
	}
	go h.loop()
	return h
}

// Inbox exposes the message channel for callers that want to drive the
// actor directly.
func (h *Hub) Inbox() chan<- Msg { return h.inbox }

// Create builds a room over items. A caller-supplied id that collides with
// a live room fails with room.ErrRoomExists; an empty id gets a generated
// one.
func (h *Hub) Create(id string, items []string, creator room.Player) (*room.Room, error) {
	reply := make(chan CreateReply, 1)
	h.inbox <- CreateRoom{ID: id, Items: items, Creator: creator, Reply: reply}
	res := <-reply
	return res.Room, res.Err
}

// Get returns the live room for id, or room.ErrRoomNotFound.
func (h *Hub) Get(id string) (*room.Room, error) {
	reply := make(chan *room.Room, 1)
	h.inbox <- GetRoom{ID: id, Reply: reply}
	rm := <-reply
	if rm == nil {
		return nil, room.ErrRoomNotFound
	}
	return rm, nil
}

func (h *Hub) loop() {
	var reap <-chan time.Time
	if h.idleAfter > 0 {
		ticker := time.NewTicker(h.idleAfter / 2)
		defer ticker.Stop()
		reap = ticker.C
	}

	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case <-reap:
			h.reapIdle()

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				msg.Reply <- h.create(msg)

			case GetRoom:
				msg.Reply <- h.rooms[msg.ID] // may be nil

			case RemoveRoom:
				if rm := h.rooms[msg.ID]; rm != nil {
					rm.Close()
					delete(h.rooms, msg.ID)
				}

			case Shutdown:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) create(msg CreateRoom) CreateReply {
	id := msg.ID
	if id == "" {
		for {
			generated, err := generateRoomID()
			if err != nil {
				return CreateReply{Err: err}
			}
			if _, taken := h.rooms[generated]; !taken {
				id = generated
				break
			}
			h.log.Warn("room id collision, regenerating", zap.String("id", generated))
		}
	} else if _, taken := h.rooms[id]; taken {
		return CreateReply{Err: room.ErrRoomExists}
	}

	rm := room.New(id, msg.Items, msg.Creator, h.log)
	h.rooms[id] = rm
	h.log.Info("room created",
		zap.String("id", id),
		zap.String("creator", msg.Creator.ID),
		zap.Int("items", len(msg.Items)))
	return CreateReply{Room: rm}
}

func (h *Hub) reapIdle() {
	cutoff := time.Now().Add(-h.idleAfter)
	for id, rm := range h.rooms {
		if rm.LastActive().Before(cutoff) {
			rm.Close()
			delete(h.rooms, id)
			h.log.Info("idle room evicted", zap.String("id", id))
		}
	}
}

func (h *Hub) shutdown() {
	for id, rm := range h.rooms {
		rm.Close()
		delete(h.rooms, id)
	}
	h.cancel()
}
