package entity

// EventKind distinguishes discrete gameplay events
type EventKind int

const (
	EventGoal EventKind = iota
	EventKick
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventGoal:
		return "goal"
	case EventKick:
		return "kick"
	default:
		return "unknown"
	}
}

// Event is emitted during a tick for audio/visual feedback.
// For EventGoal, Team is the scoring side and Actor is NoActor.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Team  Team
	Actor ActorID
	Mode  KickMode // EventKick only
}
