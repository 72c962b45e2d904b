package engine

import "encoding/json"

// Duel is one head-to-head comparison between two contestants. A duel with
// Bye set has no right side and resolves immediately in favor of Left.
type Duel struct {
	Left  string
	Right string
	Bye   bool
}

// HasSide reports whether choice names one of the duel's contestants. A bye
// has no votable sides.
func (d Duel) HasSide(choice string) bool {
	if d.Bye {
		return false
	}
	return choice == d.Left || choice == d.Right
}

// MarshalJSON encodes the duel as the two-element tuple clients render:
// ["left","right"], or ["left",null] for a bye.
func (d Duel) MarshalJSON() ([]byte, error) {
	if d.Bye {
		return json.Marshal([2]any{d.Left, nil})
	}
	return json.Marshal([2]any{d.Left, d.Right})
}

func (d *Duel) UnmarshalJSON(data []byte) error {
	var pair [2]*string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	*d = Duel{}
	if pair[0] != nil {
		d.Left = *pair[0]
	}
	if pair[1] == nil {
		d.Bye = true
		return nil
	}
	d.Right = *pair[1]
	return nil
}

// MakePairs groups contestants into duels in input order, two consecutive
// entries per duel, with an odd tail becoming a bye. Pairing never shuffles;
// callers wanting randomness shuffle before pairing so that grouping stays a
// pure function of input order.
func MakePairs(contestants []string) []Duel {
	pairs := make([]Duel, 0, (len(contestants)+1)/2)
	for i := 0; i < len(contestants); i += 2 {
		if i+1 < len(contestants) {
			pairs = append(pairs, Duel{Left: contestants[i], Right: contestants[i+1]})
		} else {
			pairs = append(pairs, Duel{Left: contestants[i], Bye: true})
		}
	}
	return pairs
}
