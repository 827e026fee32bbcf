package pet

// Action identifies something a caller can do to the pet.
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionSleep
	ActionPoop
	ActionCheckState
	ActionAbandon
)

var actionNames = [...]string{
	ActionFeed:       "Feed",
	ActionPlay:       "Play",
	ActionSleep:      "Sleep",
	ActionPoop:       "Poop",
	ActionCheckState: "CheckState",
	ActionAbandon:    "Abandon",
}

// Actions returns every action in menu order.
func Actions() []Action {
	return []Action{ActionFeed, ActionPlay, ActionSleep, ActionPoop, ActionCheckState, ActionAbandon}
}

// Valid reports whether a belongs to the closed set of actions.
func (a Action) Valid() bool {
	return a >= ActionFeed && a <= ActionAbandon
}

func (a Action) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return actionNames[a]
}
