package player

// State is the playback state of a Player.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateEnded
)

var stateNames = map[State]string{
	StateIdle:    "idle",
	StateLoading: "loading",
	StateReady:   "ready",
	StatePlaying: "playing",
	StatePaused:  "paused",
	StateEnded:   "ended",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "unknown"
}
