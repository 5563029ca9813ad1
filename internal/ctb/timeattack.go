package ctb

// EventKind identifies a time-attack trigger.
type EventKind uint8

const (
	EventWarning EventKind = iota
	EventGameOver
)

// Event asks the host to run a common event.
type Event struct {
	Kind    EventKind
	EventID int
}

// TimeAttack is a per-battle tick countdown. It is armed before a battle and
// consumed when the battle starts.
type TimeAttack struct {
	armed         bool
	goal          int
	warnThreshold int
	warnEventID   int
	overEventID   int

	active    bool
	remaining int
	warned    bool
	over      bool
}

// Arm makes the next battle a time-attack battle.
func (ta *TimeAttack) Arm() { ta.armed = true }

// Armed reports whether the next battle will run the countdown.
func (ta *TimeAttack) Armed() bool { return ta.armed }

// SetGoal sets the ticks available in the next time-attack battle.
func (ta *TimeAttack) SetGoal(ticks int) { ta.goal = max(0, ticks) }

// SetWarning fires eventID once when remaining ticks reach threshold.
// An eventID of 0 disables the warning.
func (ta *TimeAttack) SetWarning(threshold, eventID int) {
	ta.warnThreshold = threshold
	ta.warnEventID = max(0, eventID)
}

// SetGameOver fires eventID once when the countdown reaches zero.
func (ta *TimeAttack) SetGameOver(eventID int) { ta.overEventID = max(0, eventID) }

// Start begins the countdown if the battle was armed. It reports whether
// time attack is active.
func (ta *TimeAttack) Start() bool {
	if !ta.armed {
		return false
	}
	ta.armed = false
	ta.active = true
	ta.remaining = ta.goal
	ta.warned = false
	ta.over = false
	return true
}

// Active reports whether the countdown runs in this battle.
func (ta *TimeAttack) Active() bool { return ta.active }

// Remaining returns the ticks left.
func (ta *TimeAttack) Remaining() int { return ta.remaining }

// Expired reports whether the countdown hit zero.
func (ta *TimeAttack) Expired() bool { return ta.active && ta.remaining <= 0 }

// Tick consumes one battle tick and returns events that became due.
func (ta *TimeAttack) Tick() []Event {
	if !ta.active {
		return nil
	}
	if ta.remaining > 0 {
		ta.remaining--
	}
	var events []Event
	if !ta.warned && ta.warnEventID > 0 && ta.remaining <= ta.warnThreshold {
		ta.warned = true
		events = append(events, Event{Kind: EventWarning, EventID: ta.warnEventID})
	}
	if !ta.over && ta.overEventID > 0 && ta.remaining <= 0 {
		ta.over = true
		events = append(events, Event{Kind: EventGameOver, EventID: ta.overEventID})
	}
	return events
}

// End clears per-battle state. Goal and event ids carry over.
func (ta *TimeAttack) End() {
	ta.active = false
	ta.remaining = 0
	ta.warned = false
	ta.over = false
}
