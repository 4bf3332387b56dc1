package interaction

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

const (
	keyCtrlC = 3
	keyTab   = 9
	keyEsc   = 27
)

// IsQuit reports whether the event asks to leave the program
func (e KeyEvent) IsQuit() bool {
	return e.Type == KeyChar && (e.Key == 'q' || e.Key == 'Q' || e.Key == keyCtrlC)
}

// IsTab reports whether the event is the Tab key
func (e KeyEvent) IsTab() bool {
	return e.Type == KeyChar && e.Key == keyTab
}

// parseInput parses raw keyboard input
func parseInput(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	// Handle Ctrl+C
	if buf[0] == keyCtrlC {
		return &KeyEvent{Key: keyCtrlC, Type: KeyChar}
	}

	// Handle escape sequences
	if buf[0] == keyEsc {
		if len(buf) == 1 {
			return &KeyEvent{Key: keyEsc, Type: KeyEscape}
		}
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return &KeyEvent{Key: 'A', Type: KeyUp}
			case 'B':
				return &KeyEvent{Key: 'B', Type: KeyDown}
			case 'C':
				return &KeyEvent{Key: 'C', Type: KeyRight}
			case 'D':
				return &KeyEvent{Key: 'D', Type: KeyLeft}
			}
		}
		return nil
	}

	// Handle regular characters
	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}
