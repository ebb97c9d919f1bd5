// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
)

// Sentinel errors for scenario validation.
var (
	// ErrInvalidScenario indicates a non-positive outcome or setting count.
	ErrInvalidScenario = errors.New("scenario: counts must be positive integers")

	// ErrUnsupportedParty indicates a Party value other than A or B.
	ErrUnsupportedParty = errors.New("scenario: party not supported")
)

// Party identifies one side of the bipartite scenario.
type Party int

const (
	// PartyA is the left party; its events use outcome a ∈ [0,NA), setting x ∈ [0,NX).
	PartyA Party = iota
	// PartyB is the right party; its events use outcome b ∈ [0,NB), setting m ∈ [0,NM).
	PartyB
)

// String returns "A", "B" or "Party(n)" for unknown values.
func (p Party) String() string {
	switch p {
	case PartyA:
		return "A"
	case PartyB:
		return "B"
	default:
		return fmt.Sprintf("Party(%d)", int(p))
	}
}

// Valid reports whether p is PartyA or PartyB.
func (p Party) Valid() bool { return p == PartyA || p == PartyB }

// Scenario is the Bell scenario tuple (NA, NB, NX, NM).
type Scenario struct {
	NA int `yaml:"na" json:"na"` // outcomes of A
	NB int `yaml:"nb" json:"nb"` // outcomes of B
	NX int `yaml:"nx" json:"nx"` // settings of A
	NM int `yaml:"nm" json:"nm"` // settings of B
}

// New returns a validated Scenario.
// Errors: ErrInvalidScenario (wrapped) if any count is ≤ 0.
func New(na, nb, nx, nm int) (Scenario, error) {
	s := Scenario{NA: na, NB: nb, NX: nx, NM: nm}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Binary returns the CHSH scenario (2,2,2,2).
func Binary() Scenario { return Scenario{NA: 2, NB: 2, NX: 2, NM: 2} }

// Validate checks that all four counts are positive.
// Complexity: O(1).
func (s Scenario) Validate() error {
	switch {
	case s.NA <= 0:
		return fmt.Errorf("Validate: NA=%d: %w", s.NA, ErrInvalidScenario)
	case s.NB <= 0:
		return fmt.Errorf("Validate: NB=%d: %w", s.NB, ErrInvalidScenario)
	case s.NX <= 0:
		return fmt.Errorf("Validate: NX=%d: %w", s.NX, ErrInvalidScenario)
	case s.NM <= 0:
		return fmt.Errorf("Validate: NM=%d: %w", s.NM, ErrInvalidScenario)
	}

	return nil
}

// IsBinary reports whether both parties have two outcomes and two settings.
func (s Scenario) IsBinary() bool { return s == Binary() }

// Outcomes returns the outcome count of party p.
func (s Scenario) Outcomes(p Party) (int, error) {
	switch p {
	case PartyA:
		return s.NA, nil
	case PartyB:
		return s.NB, nil
	default:
		return 0, fmt.Errorf("Outcomes(%s): %w", p, ErrUnsupportedParty)
	}
}

// Settings returns the setting count of party p.
func (s Scenario) Settings(p Party) (int, error) {
	switch p {
	case PartyA:
		return s.NX, nil
	case PartyB:
		return s.NM, nil
	default:
		return 0, fmt.Errorf("Settings(%s): %w", p, ErrUnsupportedParty)
	}
}

// Events returns the number of distinct single-event projectors of party p,
// i.e. outcomes × settings.
func (s Scenario) Events(p Party) (int, error) {
	o, err := s.Outcomes(p)
	if err != nil {
		return 0, err
	}
	n, _ := s.Settings(p)

	return o * n, nil
}

// Cells returns NA·NB·NX·NM, the size of a joint probability table.
func (s Scenario) Cells() int { return s.NA * s.NB * s.NX * s.NM }

// String formats the tuple as "(NA,NB,NX,NM)".
func (s Scenario) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", s.NA, s.NB, s.NX, s.NM)
}
