package word_test

import (
	"testing"

	"github.com/katalvlaran/npa/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq builds an unreduced word from (outcome, setting) pairs.
func seq(t *testing.T, pairs ...[2]int) word.Word {
	t.Helper()
	ev := make([]word.Event, len(pairs))
	for i, p := range pairs {
		ev[i] = word.Event{Outcome: p[0], Setting: p[1]}
	}
	w, err := word.FromEvents(ev...)
	require.NoError(t, err)

	return w
}

// samples returns a spread of words covering every variant.
func samples(t *testing.T) []word.Word {
	return []word.Word{
		word.Identity(),
		word.Null(),
		word.MustNew(0, 0),
		word.MustNew(1, 1),
		seq(t, [2]int{0, 0}, [2]int{1, 1}),
		seq(t, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 2}),
	}
}

// TestNew_InvalidInput ensures negative components are rejected.
func TestNew_InvalidInput(t *testing.T) {
	_, err := word.New(-1, 0)
	require.ErrorIs(t, err, word.ErrInvalidOperatorInput)

	_, err = word.New(0, -3)
	require.ErrorIs(t, err, word.ErrInvalidOperatorInput)

	_, err = word.FromEvents(word.Event{Outcome: 0, Setting: 0}, word.Event{Outcome: -2, Setting: 1})
	require.ErrorIs(t, err, word.ErrInvalidOperatorInput)

	assert.Panics(t, func() { word.MustNew(-1, -1) })
}

// TestZeroValueIsIdentity documents the zero value.
func TestZeroValueIsIdentity(t *testing.T) {
	var w word.Word
	assert.True(t, w.IsIdentity())
	assert.True(t, word.Equal(w, word.Identity()))
	assert.Equal(t, word.KindIdentity, w.Kind())
}

// TestConcat_Identity checks 𝟙 is a two-sided unit.
func TestConcat_Identity(t *testing.T) {
	for _, w := range samples(t) {
		assert.True(t, word.Equal(w, word.Concat(word.Identity(), w)), "I·%s", w)
		assert.True(t, word.Equal(w, word.Concat(w, word.Identity())), "%s·I", w)
	}
}

// TestConcat_Null checks 0 absorbs from both sides.
func TestConcat_Null(t *testing.T) {
	for _, w := range samples(t) {
		assert.True(t, word.Concat(word.Null(), w).IsNull(), "0·%s", w)
		assert.True(t, word.Concat(w, word.Null()).IsNull(), "%s·0", w)
	}
}

// TestConcat_Idempotent checks E(a|x)·E(a|x) = E(a|x).
func TestConcat_Idempotent(t *testing.T) {
	e := word.MustNew(1, 2)
	got := word.Concat(e, e)
	assert.True(t, word.Equal(e, got))
	assert.Equal(t, 1, got.Len())
}

// TestConcat_Orthogonal checks E(a|x)·E(a'|x) = 0 for a ≠ a'.
func TestConcat_Orthogonal(t *testing.T) {
	got := word.Concat(word.MustNew(0, 1), word.MustNew(1, 1))
	assert.True(t, got.IsNull())
}

// TestConcat_Append checks different settings are appended in order.
func TestConcat_Append(t *testing.T) {
	got := word.Concat(word.MustNew(0, 0), word.MustNew(1, 1))
	assert.Equal(t, "0|0 1|1", got.String())

	rev := word.Concat(word.MustNew(1, 1), word.MustNew(0, 0))
	assert.Equal(t, "1|1 0|0", rev.String())
	assert.False(t, word.Equal(got, rev), "projectors of different settings do not commute")
}

// TestConcat_BoundaryOnly checks the reduction is applied once at the seam
// and never renormalises the interior.
func TestConcat_BoundaryOnly(t *testing.T) {
	left := seq(t, [2]int{0, 0}, [2]int{1, 1})
	right := seq(t, [2]int{1, 1}, [2]int{0, 0})

	got := word.Concat(left, right)
	// 0|0 1|1 · 1|1 0|0 → 0|0 1|1 0|0; the new 1|1 0|0 seam is not revisited.
	assert.Equal(t, "0|0 1|1 0|0", got.String())

	clash := word.Concat(left, seq(t, [2]int{0, 1}, [2]int{0, 0}))
	assert.True(t, clash.IsNull())
}

// TestConcat_DoesNotMutate checks operands are left intact.
func TestConcat_DoesNotMutate(t *testing.T) {
	left := seq(t, [2]int{0, 0}, [2]int{1, 1})
	right := seq(t, [2]int{1, 1}, [2]int{0, 2})
	before := left.String() + "/" + right.String()

	_ = word.Concat(left, right)
	_ = word.Conj(left)
	ev := left.Events()
	ev[0] = word.Event{Outcome: 9, Setting: 9}

	assert.Equal(t, before, left.String()+"/"+right.String())
}

// TestConj checks reversal, self-adjoint sentinels and involution.
func TestConj(t *testing.T) {
	w := seq(t, [2]int{0, 0}, [2]int{1, 1}, [2]int{0, 2})
	assert.Equal(t, "0|2 1|1 0|0", word.Conj(w).String())

	assert.True(t, word.Conj(word.Identity()).IsIdentity())
	assert.True(t, word.Conj(word.Null()).IsNull())

	for _, s := range samples(t) {
		assert.True(t, word.Equal(s, word.Conj(word.Conj(s))), "conj(conj(%s))", s)
	}
}

// TestEqualAndKey checks structural equality and canonical keys.
func TestEqualAndKey(t *testing.T) {
	a := seq(t, [2]int{0, 0}, [2]int{1, 1})
	b := word.Concat(word.MustNew(0, 0), word.MustNew(1, 1))
	assert.True(t, word.Equal(a, b))
	assert.Equal(t, a.Key(), b.Key())

	assert.False(t, word.Equal(word.Identity(), word.Null()))
	assert.False(t, word.Equal(word.MustNew(0, 0), a))
	assert.NotEqual(t, word.Identity().Key(), word.Null().Key())

	ws := samples(t)
	for i := range ws {
		for j := range ws {
			assert.Equal(t, i == j, ws[i].Key() == ws[j].Key(), "%s vs %s", ws[i], ws[j])
		}
	}
}

// TestAccessors covers Len, First, Events and Kind on every variant.
func TestAccessors(t *testing.T) {
	assert.Equal(t, 0, word.Identity().Len())
	assert.Nil(t, word.Null().Events())
	_, ok := word.Null().First()
	assert.False(t, ok)

	w := seq(t, [2]int{1, 0}, [2]int{0, 1})
	first, ok := w.First()
	require.True(t, ok)
	assert.Equal(t, word.Event{Outcome: 1, Setting: 0}, first)
	assert.Equal(t, 2, w.Len())
	assert.False(t, w.IsSingle())
	assert.True(t, word.MustNew(0, 0).IsSingle())
	assert.Equal(t, word.KindSequence, w.Kind())
	assert.Equal(t, "null", word.KindNull.String())
}
