package hal

import (
	"fmt"
	"strings"
)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyA
	KeyD
	KeyS
	KeyW
	KeyF1
	KeyF2
	KeyF3

	// KeyCount is one past the last valid key code.
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyUnknown:   "unknown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyA:         "a",
	KeyD:         "d",
	KeyS:         "s",
	KeyW:         "w",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
}

func (k KeyCode) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// ParseKey returns the key named s, case-insensitively.
func ParseKey(s string) (KeyCode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KeyUp; k < KeyCount; k++ {
		if keyNames[k] == s {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

// ParseKeys parses a comma-separated key list. An empty string is no keys.
func ParseKeys(s string) ([]KeyCode, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []KeyCode
	for _, name := range strings.Split(s, ",") {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}
