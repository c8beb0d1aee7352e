package holdem

import "encoding/json"

// Phase represents the orchestrator's position in a hand.
// Phases are strictly sequential; a hand never moves backwards.
type Phase int

// constants for Phase
const (
	PhaseInit Phase = iota
	PhaseBlinds
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseBlinds:
		return "blinds"
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	case PhaseFinished:
		return "finished"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
