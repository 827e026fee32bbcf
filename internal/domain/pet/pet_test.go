package pet

import "testing"

func TestNewPetStartsAtZero(t *testing.T) {
	p := New()
	if p.Hunger != 0 || p.Boredom != 0 || p.Fatigue != 0 || p.Satiety != 0 {
		t.Fatalf("expected all needs at 0, got %+v", *p)
	}
	if p.IsDead {
		t.Fatal("new pet should be alive")
	}
}

func TestCloneIsDetached(t *testing.T) {
	p := &Pet{Hunger: 10, Boredom: 20, Fatigue: 30, Satiety: 40}
	c := p.Clone()

	p.Hunger = 99
	p.IsDead = true

	if c.Hunger != 10 || c.IsDead {
		t.Errorf("clone changed with original: %+v", c)
	}
	if c.Boredom != 20 || c.Fatigue != 30 || c.Satiety != 40 {
		t.Errorf("clone lost fields: %+v", c)
	}
}

func TestCloneOfValue(t *testing.T) {
	v := Pet{Hunger: 3, Satiety: 97}
	c := v.Clone()
	v.Satiety = 0

	if c != (Pet{Hunger: 3, Satiety: 97}) {
		t.Errorf("clone of value = %+v", c)
	}
}

func TestSaturated(t *testing.T) {
	tests := []struct {
		name string
		p    Pet
		want bool
	}{
		{"fresh", Pet{}, false},
		{"almost", Pet{Hunger: 99, Boredom: 99, Fatigue: 99, Satiety: 99}, false},
		{"hunger", Pet{Hunger: 100}, true},
		{"boredom", Pet{Boredom: 100}, true},
		{"fatigue", Pet{Fatigue: 100}, true},
		{"satiety", Pet{Satiety: 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Saturated(); got != tt.want {
				t.Errorf("Saturated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := map[int]int{-7: 0, 0: 0, 42: 42, 100: 100, 108: 100}
	for in, want := range cases {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestActionNames(t *testing.T) {
	want := []string{"Feed", "Play", "Sleep", "Poop", "CheckState", "Abandon"}
	for i, a := range Actions() {
		if a.String() != want[i] {
			t.Errorf("action %d: got %q, want %q", i, a.String(), want[i])
		}
		if !a.Valid() {
			t.Errorf("%s should be valid", a)
		}
	}
	if Action(42).Valid() || Action(-1).Valid() {
		t.Error("out of range actions must be invalid")
	}
	if Action(42).String() != "Unknown" {
		t.Errorf("got %q", Action(42).String())
	}
}
