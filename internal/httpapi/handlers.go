package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pickone/faceoff/internal/engine"
	"github.com/pickone/faceoff/internal/hub"
	"github.com/pickone/faceoff/internal/room"
	"github.com/pickone/faceoff/internal/types"
)

// Display-name fallbacks when a client sends none.
const (
	defaultHostName  = "Host"
	defaultGuestName = "Guest"
	anonymousID      = "anon"
)

type Server struct {
	hub *hub.Hub
	log *zap.Logger
}

func NewServer(h *hub.Hub, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{hub: h, log: log}
}

// HandleAction is the single protocol endpoint; it dispatches on the
// request's action field and always answers with an ActionResponse
// envelope, never a raw error surface.
func (s *Server) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req types.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, types.ActionResponse{Error: "invalid_json"})
		return
	}

	playerID := req.PlayerID
	if playerID == "" {
		playerID = anonymousID
	}

	switch req.Action {
	case "create_room":
		s.createRoom(w, req, playerID)
	case "join_room":
		s.joinRoom(w, req, playerID)
	case "get_state":
		s.getState(w, req)
	case "vote":
		s.vote(w, req, playerID)
	case "next":
		s.next(w, req, playerID)
	default:
		writeJSON(w, http.StatusBadRequest, types.ActionResponse{Error: "unknown_action"})
	}
}

func (s *Server) createRoom(w http.ResponseWriter, req types.ActionRequest, playerID string) {
	name := req.PlayerName
	if name == "" {
		name = defaultHostName
	}

	rm, err := s.hub.Create(strings.TrimSpace(req.RoomID), req.Items, room.Player{ID: playerID, Name: name})
	if err != nil {
		writeError(w, err)
		return
	}
	snap := rm.State()
	writeJSON(w, http.StatusOK, types.ActionResponse{OK: true, RoomID: rm.ID(), Room: &snap})
}

func (s *Server) joinRoom(w http.ResponseWriter, req types.ActionRequest, playerID string) {
	rm, err := s.hub.Get(req.RoomID)
	if err != nil {
		writeError(w, err)
		return
	}
	name := req.PlayerName
	if name == "" {
		name = defaultGuestName
	}
	snap := rm.Join(room.Player{ID: playerID, Name: name})
	writeJSON(w, http.StatusOK, types.ActionResponse{OK: true, Room: &snap})
}

func (s *Server) getState(w http.ResponseWriter, req types.ActionRequest) {
	rm, err := s.hub.Get(req.RoomID)
	if err != nil {
		writeError(w, err)
		return
	}
	snap := rm.State()
	writeJSON(w, http.StatusOK, types.ActionResponse{OK: true, Room: &snap})
}

func (s *Server) vote(w http.ResponseWriter, req types.ActionRequest, playerID string) {
	rm, err := s.hub.Get(req.RoomID)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := rm.Vote(playerID, req.Choice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ActionResponse{OK: true, Room: &snap})
}

func (s *Server) next(w http.ResponseWriter, req types.ActionRequest, playerID string) {
	rm, err := s.hub.Get(req.RoomID)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := rm.Advance(playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ActionResponse{OK: true, Room: &snap})
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// errorCode maps a core failure to its HTTP status and stable wire code.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound, "room_not_found"
	case errors.Is(err, room.ErrRoomExists):
		return http.StatusBadRequest, "room_exists"
	case errors.Is(err, room.ErrNotCreator):
		return http.StatusForbidden, "not_creator"
	case errors.Is(err, room.ErrNotReady):
		return http.StatusBadRequest, "not_ready"
	case errors.Is(err, engine.ErrFinished):
		return http.StatusBadRequest, "tournament_finished"
	case errors.Is(err, engine.ErrInvalidChoice):
		return http.StatusBadRequest, "invalid_choice"
	case errors.Is(err, engine.ErrEmptyRound):
		return http.StatusBadRequest, "empty_round"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, code := errorCode(err)
	writeJSON(w, status, types.ActionResponse{Error: code})
}

func writeJSON(w http.ResponseWriter, status int, body types.ActionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
