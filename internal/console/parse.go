package console

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/MRamiBalles/tamagotchi/internal/domain/pet"
)

// fuzzyMinLen is the shortest word that may match an alias with one typo.
const fuzzyMinLen = 4

type command struct {
	action  pet.Action
	key     rune
	label   string
	aliases []string
}

var commands = []command{
	{pet.ActionFeed, '1', "Feed", []string{"feed", "eat", "food"}},
	{pet.ActionPlay, '2', "Play", []string{"play", "game"}},
	{pet.ActionSleep, '3', "Put to bed", []string{"sleep", "bed", "rest"}},
	{pet.ActionPoop, '4', "Bring to toilet", []string{"poop", "toilet", "potty"}},
	{pet.ActionCheckState, '5', "Check state", []string{"check", "state", "status"}},
	{pet.ActionAbandon, '6', "Abandon (Quits program)", []string{"abandon", "quit", "exit"}},
}

// MenuLines returns the numbered menu, one entry per action.
func MenuLines() []string {
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		lines = append(lines, string(c.key)+". "+c.label)
	}
	return lines
}

// ParseCommand maps user input to an action. It accepts a menu digit,
// a command word or alias, or a word one typo away from one.
func ParseCommand(input string) (pet.Action, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return 0, false
	}

	if r := []rune(in); len(r) == 1 {
		for _, c := range commands {
			if c.key == r[0] {
				return c.action, true
			}
		}
	}

	words := strings.FieldsFunc(in, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if a, ok := exactAlias(w); ok {
			return a, true
		}
	}
	for _, w := range words {
		if a, ok := fuzzyAlias(w); ok {
			return a, true
		}
	}
	return 0, false
}

func exactAlias(word string) (pet.Action, bool) {
	for _, c := range commands {
		for _, a := range c.aliases {
			if a == word {
				return c.action, true
			}
		}
	}
	return 0, false
}

// fuzzyAlias accepts a single edit, and only when exactly one action matches.
func fuzzyAlias(word string) (pet.Action, bool) {
	if len([]rune(word)) < fuzzyMinLen {
		return 0, false
	}
	var (
		found pet.Action
		hits  int
	)
	for _, c := range commands {
		for _, a := range c.aliases {
			if len([]rune(a)) < fuzzyMinLen {
				continue
			}
			if levenshtein.ComputeDistance(word, a) <= 1 {
				found = c.action
				hits++
				break
			}
		}
	}
	return found, hits == 1
}
