// Package pet defines the core domain entity: the single pet and the actions
// a caller can perform on it.
// This package is PURE and must NOT import any infrastructure packages (engine, events, platform).
package pet

const (
	MinNeed = 0   // Fully satisfied
	MaxNeed = 100 // Saturated, the pet dies
)

// Pet represents the state of the pet.
// All fields are scalars today; Clone copies field by field so that adding a
// composite field later forces a deliberate deep copy here.
type Pet struct {
	// Needs
	Hunger  int `json:"hunger"`  // 0-100 (100 = starved)
	Boredom int `json:"boredom"` // 0-100
	Fatigue int `json:"fatigue"` // 0-100
	Satiety int `json:"satiety"` // 0-100 (100 = must poop)

	// State
	IsDead bool `json:"is_dead"` // Monotonic: never reset once true
}

// Need is a named counter, used by presentation layers.
type Need struct {
	Name  string
	Value int
}

// New creates a fresh pet with every need at zero.
func New() *Pet {
	return &Pet{}
}

// Clone returns a fully detached copy.
func (p Pet) Clone() Pet {
	return Pet{
		Hunger:  p.Hunger,
		Boredom: p.Boredom,
		Fatigue: p.Fatigue,
		Satiety: p.Satiety,
		IsDead:  p.IsDead,
	}
}

// Saturated reports whether any need has reached MaxNeed.
func (p Pet) Saturated() bool {
	return p.Hunger >= MaxNeed ||
		p.Boredom >= MaxNeed ||
		p.Fatigue >= MaxNeed ||
		p.Satiety >= MaxNeed
}

// Needs returns the counters in display order.
func (p Pet) Needs() []Need {
	return []Need{
		{Name: "Hungry", Value: p.Hunger},
		{Name: "Bored", Value: p.Boredom},
		{Name: "Tired", Value: p.Fatigue},
		{Name: "Full", Value: p.Satiety},
	}
}

// Clamp bounds v into [MinNeed, MaxNeed].
func Clamp(v int) int {
	if v < MinNeed {
		return MinNeed
	}
	if v > MaxNeed {
		return MaxNeed
	}
	return v
}
