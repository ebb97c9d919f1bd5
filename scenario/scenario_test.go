package scenario_test

import (
	"testing"

	"github.com/katalvlaran/npa/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsNonPositive checks every count is validated.
func TestNew_RejectsNonPositive(t *testing.T) {
	cases := [][4]int{
		{0, 2, 2, 2},
		{2, 0, 2, 2},
		{2, 2, -1, 2},
		{2, 2, 2, 0},
	}
	for _, c := range cases {
		_, err := scenario.New(c[0], c[1], c[2], c[3])
		require.ErrorIs(t, err, scenario.ErrInvalidScenario, "tuple %v", c)
	}
}

// TestNew_Valid checks accessors on a valid asymmetric scenario.
func TestNew_Valid(t *testing.T) {
	s, err := scenario.New(2, 3, 4, 5)
	require.NoError(t, err)

	na, err := s.Outcomes(scenario.PartyA)
	require.NoError(t, err)
	assert.Equal(t, 2, na)

	nm, err := s.Settings(scenario.PartyB)
	require.NoError(t, err)
	assert.Equal(t, 5, nm)

	eb, err := s.Events(scenario.PartyB)
	require.NoError(t, err)
	assert.Equal(t, 15, eb)

	assert.Equal(t, 120, s.Cells())
	assert.Equal(t, "(2,3,4,5)", s.String())
	assert.False(t, s.IsBinary())
}

// TestParty_Unsupported checks unknown parties are rejected.
func TestParty_Unsupported(t *testing.T) {
	s := scenario.Binary()
	assert.True(t, s.IsBinary())

	_, err := s.Outcomes(scenario.Party(7))
	require.ErrorIs(t, err, scenario.ErrUnsupportedParty)
	_, err = s.Events(scenario.Party(-1))
	require.ErrorIs(t, err, scenario.ErrUnsupportedParty)

	assert.False(t, scenario.Party(2).Valid())
	assert.Equal(t, "A", scenario.PartyA.String())
	assert.Equal(t, "Party(2)", scenario.Party(2).String())
}
