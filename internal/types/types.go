// Package types holds the wire shapes of the room protocol.
//
// Clients drive everything through POST /api/vote with an action field:
//
//	create_room: items[], roomId?, playerId, playerName
//	join_room:   roomId, playerId, playerName
//	get_state:   roomId
//	vote:        roomId, playerId, choice
//	next:        roomId, playerId
//
// Every response is an ActionResponse envelope; on failure Error carries a
// stable code (room_not_found, room_exists, tournament_finished,
// not_creator, not_ready, invalid_choice, empty_round) so clients can tell
// "try again" from "never existed" from "not permitted".
package types

import "github.com/pickone/faceoff/internal/room"

type ActionRequest struct {
	Action     string   `json:"action"`
	RoomID     string   `json:"roomId,omitempty"`
	PlayerID   string   `json:"playerId,omitempty"`
	PlayerName string   `json:"playerName,omitempty"`
	Items      []string `json:"items,omitempty"`
	Choice     string   `json:"choice,omitempty"`
}

type ActionResponse struct {
	OK     bool           `json:"ok"`
	RoomID string         `json:"roomId,omitempty"`
	Room   *room.Snapshot `json:"room,omitempty"`
	Error  string         `json:"error,omitempty"`
}
