package room

import "errors"

var ErrRoomNotFound = errors.New("no such room")
var ErrRoomExists = errors.New("room id already in use")
var ErrNotCreator = errors.New("only the room creator may advance")
var ErrNotReady = errors.New("current duel is not decided yet")
