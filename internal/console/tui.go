package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/MRamiBalles/tamagotchi/internal/domain/pet"
)

const (
	barWidth = 25
	margin   = 2
)

var (
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleLow    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMid    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHigh   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var actionResults = map[pet.Action]string{
	pet.ActionFeed:       "Nom nom.",
	pet.ActionPlay:       "Wheee!",
	pet.ActionSleep:      "Zzz...",
	pet.ActionPoop:       "Much better.",
	pet.ActionCheckState: "Looking good.",
}

// TUI is the full-screen terminal UI.
// The screen must already be initialized; the caller owns Fini.
type TUI struct {
	core   Core
	screen tcell.Screen
	redraw time.Duration
	status string
}

// NewTUI creates a full-screen UI that refreshes every redraw so decay is
// visible without input.
func NewTUI(core Core, screen tcell.Screen, redraw time.Duration) *TUI {
	return &TUI{core: core, screen: screen, redraw: redraw}
}

// Run draws and dispatches keys until the pet is dead and a key is pressed,
// or ctx ends.
func (u *TUI) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(u.redraw)
	defer ticker.Stop()

	u.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			u.draw()
		case ev := <-evCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				u.screen.Sync()
			case *tcell.EventKey:
				if u.handleKey(ev) {
					return nil
				}
			}
			u.draw()
		}
	}
}

// handleKey reports whether the UI should exit.
func (u *TUI) handleKey(ev *tcell.EventKey) bool {
	if u.core.Snapshot().IsDead {
		return true
	}

	var (
		action pet.Action
		ok     bool
	)
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		action, ok = pet.ActionAbandon, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			action, ok = pet.ActionAbandon, true
		} else {
			action, ok = ParseCommand(string(ev.Rune()))
		}
	}
	if !ok {
		u.status = "Sorry, I don't understand ...?"
		return false
	}

	if u.core.Apply(action) {
		u.status = actionResults[action]
	}
	return false
}

func (u *TUI) draw() {
	snap := u.core.Snapshot()

	u.screen.Clear()
	y := 1
	u.drawText(margin, y, styleTitle, "Welcome to the Magic Tamagotchi")
	y += 2

	for _, n := range snap.Needs() {
		u.drawText(margin, y, tcell.StyleDefault, fmt.Sprintf("%-7s", n.Name))
		u.drawText(margin+8, y, needStyle(n.Value), bar(n.Value))
		u.drawText(margin+8+barWidth+3, y, tcell.StyleDefault, fmt.Sprintf("%3d", n.Value))
		y++
	}
	y++

	if snap.IsDead {
		u.drawText(margin, y, styleDead, "Ohh no, your Tamagotchi died!")
		u.drawText(margin, y+1, styleDead, "R.I.P. litte fella :(")
		u.drawText(margin, y+3, tcell.StyleDefault, "Press any key to exit.")
		u.screen.Show()
		return
	}

	u.drawText(margin, y, tcell.StyleDefault, "Choose one option below (q/Esc abandons)")
	y++
	for _, line := range MenuLines() {
		u.drawText(margin, y, tcell.StyleDefault, line)
		y++
	}
	y++
	u.drawText(margin, y, styleStatus, u.status)
	u.screen.Show()
}

func (u *TUI) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func bar(v int) string {
	filled := pet.Clamp(v) * barWidth / pet.MaxNeed
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func needStyle(v int) tcell.Style {
	switch {
	case v >= 80:
		return styleHigh
	case v >= 50:
		return styleMid
	}
	return styleLow
}
