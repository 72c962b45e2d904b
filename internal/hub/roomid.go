package hub

import (
	"crypto/rand"
	"math/big"
)

// Ambiguous characters (0/O, 1/I) are left out so ids survive being read
// aloud.
const roomIDCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const roomIDLength = 6

func generateRoomID() (string, error) {
	id := make([]byte, roomIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomIDCharset))))
		if err != nil {
			return "", err
		}
		id[i] = roomIDCharset[n.Int64()]
	}
	return string(id), nil
}
