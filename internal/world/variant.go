package world

import (
	"fmt"
	"strings"
)

// Variant selects one of the three rule sets.
type Variant int

const (
	Classic Variant = iota // two fixed obstacles, fixed window
	Scaled                 // resizable, difficulty scaling, obstacle pool
	Deluxe                 // scaled plus power-ups, floor effects, sound, high score
)

func (v Variant) String() string {
	switch v {
	case Classic:
		return "classic"
	case Scaled:
		return "scaled"
	case Deluxe:
		return "deluxe"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant accepts a variant name, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "1":
		return Classic, nil
	case "scaled", "2":
		return Scaled, nil
	case "deluxe", "3":
		return Deluxe, nil
	}
	return Classic, fmt.Errorf("unknown variant %q", s)
}

// Features is the set of rules a variant switches on.
type Features struct {
	Resizable  bool
	Difficulty bool
	Pool       bool
	PowerUps   bool
	Effects    bool
	Sound      bool
	HighScore  bool
}

// Features returns the rules enabled for v.
func (v Variant) Features() Features {
	switch v {
	case Scaled:
		return Features{Resizable: true, Difficulty: true, Pool: true}
	case Deluxe:
		return Features{
			Resizable:  true,
			Difficulty: true,
			Pool:       true,
			PowerUps:   true,
			Effects:    true,
			Sound:      true,
			HighScore:  true,
		}
	}
	return Features{}
}
