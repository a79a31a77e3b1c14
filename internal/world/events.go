package world

// Events is the set of things that happened during one Step.
type Events uint16

const (
	EventGameOver Events = 1 << iota
	EventFloorHit
	EventPowerUp
	EventShielded
	EventNewHighScore
	EventPaused
	EventResumed
	EventRestart
	EventObstacleSpawned
)

// Has reports whether every event in f is set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

// Phase is the derived running / paused / game-over state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "running"
}
