package sim

type EventKind int

const (
	EventShot EventKind = iota
	EventEnemyHit
	EventEnemyDead
	EventWon
	EventLost
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyDead:
		return "enemy_dead"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

// Event records something observable that happened during a step. Enemy is
// the index into State.Enemies, or -1.
type Event struct {
	Kind  EventKind
	Enemy int
}
