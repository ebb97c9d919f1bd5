package word_test

import (
	"testing"

	"github.com/katalvlaran/npa/word"
)

// BenchmarkConcat_Append measures the append path on length-4 operands.
func BenchmarkConcat_Append(b *testing.B) {
	left, _ := word.FromEvents(word.Event{Outcome: 0, Setting: 0}, word.Event{Outcome: 1, Setting: 1}, word.Event{Outcome: 0, Setting: 0}, word.Event{Outcome: 1, Setting: 1})
	right, _ := word.FromEvents(word.Event{Outcome: 0, Setting: 0}, word.Event{Outcome: 1, Setting: 1}, word.Event{Outcome: 0, Setting: 0}, word.Event{Outcome: 1, Setting: 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = word.Concat(left, right)
	}
}

// BenchmarkKey measures canonical key formatting.
func BenchmarkKey(b *testing.B) {
	w, _ := word.FromEvents(word.Event{Outcome: 0, Setting: 0}, word.Event{Outcome: 1, Setting: 1}, word.Event{Outcome: 0, Setting: 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Key()
	}
}
