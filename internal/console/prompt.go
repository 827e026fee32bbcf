// Package console is the presentation layer: it polls the engine for
// snapshots, renders them, and turns user input into actions.
// It talks to the engine only through Core.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MRamiBalles/tamagotchi/internal/domain/pet"
)

// maxAttempts is how many unreadable answers a prompt tolerates before giving up.
const maxAttempts = 3

const rule = "**********************************************"

// Core is the engine surface the presentation layer needs.
type Core interface {
	Snapshot() pet.Pet
	Apply(action pet.Action) bool
}

// Prompt is the plain line-oriented UI.
type Prompt struct {
	core Core
	in   *bufio.Scanner
	out  io.Writer
}

// NewPrompt creates a line UI reading answers from in and writing to out.
func NewPrompt(core Core, in io.Reader, out io.Writer) *Prompt {
	return &Prompt{core: core, in: bufio.NewScanner(in), out: out}
}

// Run loops until the pet dies or is abandoned.
func (p *Prompt) Run() error {
	fmt.Fprintln(p.out, "Welcome to the Magic Tamagotchi")
	for {
		snap := p.core.Snapshot()
		if snap.IsDead {
			break
		}
		p.writeState(snap)
		if !p.core.Apply(p.readAction()) {
			p.writeState(p.core.Snapshot())
			break
		}
	}
	fmt.Fprintln(p.out, "Ohh no, your Tamagotchi died!")
	fmt.Fprintln(p.out, "R.I.P. litte fella :(")
	return p.in.Err()
}

func (p *Prompt) writeState(snap pet.Pet) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rule)
	for _, n := range snap.Needs() {
		fmt.Fprintf(p.out, "%s: %d\n", n.Name, n.Value)
	}
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)
}

// readAction asks up to maxAttempts times, then abandons the pet.
// End of input abandons immediately.
func (p *Prompt) readAction() pet.Action {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintln(p.out, "Choose one option below")
		for _, line := range MenuLines() {
			fmt.Fprintln(p.out, line)
		}
		if !p.in.Scan() {
			return pet.ActionAbandon
		}
		if a, ok := ParseCommand(p.in.Text()); ok {
			return a
		}
		fmt.Fprintln(p.out, "Sorry, I don't understand ...?")
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, "I give up trying to understand you ...")
	return pet.ActionAbandon
}
