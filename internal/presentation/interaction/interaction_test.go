package interaction

import (
	"testing"

	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected *KeyEvent
	}{
		{"empty", nil, nil},
		{"regular char", []byte{'a'}, &KeyEvent{Key: 'a', Type: KeyChar}},
		{"digit", []byte{'3'}, &KeyEvent{Key: '3', Type: KeyChar}},
		{"tab", []byte{9}, &KeyEvent{Key: 9, Type: KeyChar}},
		{"ctrl+c", []byte{3}, &KeyEvent{Key: 3, Type: KeyChar}},
		{"escape", []byte{27}, &KeyEvent{Key: 27, Type: KeyEscape}},
		{"arrow left", []byte{27, '[', 'D'}, &KeyEvent{Key: 'D', Type: KeyLeft}},
		{"arrow right", []byte{27, '[', 'C'}, &KeyEvent{Key: 'C', Type: KeyRight}},
		{"arrow up", []byte{27, '[', 'A'}, &KeyEvent{Key: 'A', Type: KeyUp}},
		{"unknown sequence", []byte{27, '[', 'Z'}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseInput(tt.input))
		})
	}
}

func TestKeyEventHelpers(t *testing.T) {
	assert.True(t, KeyEvent{Key: 'q'}.IsQuit())
	assert.True(t, KeyEvent{Key: 3}.IsQuit())
	assert.False(t, KeyEvent{Key: 'q', Type: KeyEscape}.IsQuit())
	assert.True(t, KeyEvent{Key: 9}.IsTab())
	assert.False(t, KeyEvent{Key: 'x'}.IsTab())
}

func TestReadingSorter(t *testing.T) {
	readings := []elapsed.Reading{
		{Label: "Seconds", RawCount: 1e9},
		{Label: "days", RawCount: 12_000},
		{Label: "Years", RawCount: 33},
	}

	sorter := NewReadingSorter()
	assert.Equal(t, "table", sorter.Label())
	assert.Equal(t, readings, sorter.Sort(readings))

	sorter.Cycle()
	assert.Equal(t, "label", sorter.Label())
	byLabel := sorter.Sort(readings)
	assert.Equal(t, []string{"days", "Seconds", "Years"}, labels(byLabel))

	sorter.Cycle()
	assert.Equal(t, "value", sorter.Label())
	assert.Equal(t, []string{"Seconds", "days", "Years"}, labels(sorter.Sort(readings)))

	sorter.Cycle()
	assert.Equal(t, "table", sorter.Label())

	// The input is never reordered
	assert.Equal(t, "Seconds", readings[0].Label)
}

func labels(readings []elapsed.Reading) []string {
	out := make([]string, len(readings))
	for i, r := range readings {
		out[i] = r.Label
	}
	return out
}
