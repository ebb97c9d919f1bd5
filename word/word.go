// SPDX-License-Identifier: MIT

package word

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperatorInput indicates a negative outcome or setting.
var ErrInvalidOperatorInput = errors.New("word: outcome and setting must be non-negative")

// Kind tags the Word variant.
type Kind uint8

const (
	// KindIdentity marks the neutral word 𝟙.
	KindIdentity Kind = iota
	// KindNull marks the absorbing word 0.
	KindNull
	// KindSequence marks a non-empty product of projectors.
	KindSequence
)

// String returns a short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindNull:
		return "null"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is a single projector E(Outcome|Setting).
type Event struct {
	Outcome int
	Setting int
}

// String formats the event as "outcome|setting".
func (e Event) String() string { return fmt.Sprintf("%d|%d", e.Outcome, e.Setting) }

// Word is an immutable projector word. The zero value is Identity.
// events is non-empty iff kind == KindSequence and is never mutated
// after construction.
type Word struct {
	kind   Kind
	events []Event
}

// Identity returns the neutral word.
func Identity() Word { return Word{kind: KindIdentity} }

// Null returns the absorbing word.
func Null() Word { return Word{kind: KindNull} }

// New returns the single-event word E(outcome|setting).
// Errors: ErrInvalidOperatorInput if outcome < 0 or setting < 0.
// Complexity: O(1).
func New(outcome, setting int) (Word, error) {
	if outcome < 0 || setting < 0 {
		return Word{}, fmt.Errorf("New(%d,%d): %w", outcome, setting, ErrInvalidOperatorInput)
	}

	return Word{kind: KindSequence, events: []Event{{Outcome: outcome, Setting: setting}}}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(outcome, setting int) Word {
	w, err := New(outcome, setting)
	if err != nil {
		panic(err)
	}

	return w
}

// FromEvents builds a sequence word verbatim, without applying reduction
// rules. An empty list yields Identity.
// Errors: ErrInvalidOperatorInput if any event has a negative component.
// Complexity: O(k).
func FromEvents(events ...Event) (Word, error) {
	if len(events) == 0 {
		return Identity(), nil
	}
	for i, e := range events {
		if e.Outcome < 0 || e.Setting < 0 {
			return Word{}, fmt.Errorf("FromEvents: event %d (%s): %w", i, e, ErrInvalidOperatorInput)
		}
	}
	cp := make([]Event, len(events))
	copy(cp, events)

	return Word{kind: KindSequence, events: cp}, nil
}

// Kind returns the variant tag.
func (w Word) Kind() Kind { return w.kind }

// IsIdentity reports whether w is the neutral word.
func (w Word) IsIdentity() bool { return w.kind == KindIdentity }

// IsNull reports whether w is the absorbing word.
func (w Word) IsNull() bool { return w.kind == KindNull }

// IsSingle reports whether w is exactly one projector.
func (w Word) IsSingle() bool { return w.kind == KindSequence && len(w.events) == 1 }

// Len returns the number of projectors; sentinels have length 0.
func (w Word) Len() int { return len(w.events) }

// Events returns a copy of the projector sequence (nil for sentinels).
func (w Word) Events() []Event {
	if w.kind != KindSequence {
		return nil
	}
	cp := make([]Event, len(w.events))
	copy(cp, w.events)

	return cp
}

// First returns the leading event. ok is false for sentinels.
func (w Word) First() (e Event, ok bool) {
	if w.kind != KindSequence {
		return Event{}, false
	}

	return w.events[0], true
}

// Concat returns left·right reduced at the boundary.
//
// Rules, in order:
//  1. either operand Null → Null;
//  2. left Identity → right; right Identity → left;
//  3. last(left) == first(right) → left[:-1] ++ right;
//     same setting, different outcome → Null;
//     otherwise → left ++ right.
//
// The rule is applied once; interior events are never revisited.
// Complexity: O(len(left)+len(right)).
func Concat(left, right Word) Word {
	switch {
	case left.kind == KindNull || right.kind == KindNull:
		return Null()
	case left.kind == KindIdentity:
		return right
	case right.kind == KindIdentity:
		return left
	}

	suffix := left.events[len(left.events)-1]
	prefix := right.events[0]

	var keep int // number of left events carried into the result
	switch {
	case suffix == prefix:
		keep = len(left.events) - 1
	case suffix.Setting == prefix.Setting:
		return Null()
	default:
		keep = len(left.events)
	}

	out := make([]Event, 0, keep+len(right.events))
	out = append(out, left.events[:keep]...)
	out = append(out, right.events...)

	return Word{kind: KindSequence, events: out}
}

// Conj returns the adjoint of w: the reversed sequence. Sentinels are
// self-adjoint.
// Complexity: O(len(w)).
func Conj(w Word) Word {
	if w.kind != KindSequence {
		return w
	}
	n := len(w.events)
	out := make([]Event, n)
	for i, e := range w.events {
		out[n-1-i] = e
	}

	return Word{kind: KindSequence, events: out}
}

// Equal reports structural equality.
func Equal(a, b Word) bool {
	if a.kind != b.kind || len(a.events) != len(b.events) {
		return false
	}
	for i := range a.events {
		if a.events[i] != b.events[i] {
			return false
		}
	}

	return true
}

// Key returns the canonical text of w. Two words are Equal iff their keys
// are equal, which makes Key suitable for map lookups.
func (w Word) Key() string { return w.String() }

// String formats w as "I", "0" or "a|x a|x …".
func (w Word) String() string {
	switch w.kind {
	case KindIdentity:
		return "I"
	case KindNull:
		return "0"
	}
	var sb strings.Builder
	for i, e := range w.events {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}

	return sb.String()
}
