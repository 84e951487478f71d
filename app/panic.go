package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"
)

// ErrPanic wraps a panic raised while a scene was updating or rendering.
var ErrPanic = errors.New("app: scene panicked")

const panicLineHeight = 7

func (s *system) panicked(v any) error {
	stack := debug.Stack()
	name := s.current().Name()
	s.log.Error("panic", "scene", name, "frame", s.frame, "panic", v)
	l := s.h.Logger()
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		l.WriteLineString(line)
	}

	lines := []string{
		"RenderDemon panic:",
		fmt.Sprintf("scene: %s", name),
		fmt.Sprintf("frame: %d", s.frame),
		fmt.Sprintf("panic: %v", v),
	}
	if s.cfg.HoldOnPanic {
		lines = append(lines, "press escape to quit")
	}
	s.panicScreen(lines)

	err := fmt.Errorf("%w: %s: %v", ErrPanic, name, v)
	if s.cfg.HoldOnPanic {
		s.failed = err
		s.keys.Advance()
		return nil
	}
	return err
}

func (s *system) panicScreen(lines []string) {
	c := s.canvas
	c.ResetView()
	c.SetClearColor(0xFF, 0xFF, 0xFF)
	c.Clear()
	c.SetDrawColor(0, 0, 0)

	cols := 1
	if w := c.TextWidth("0"); w > 0 {
		cols = max(c.Width()/w, 1)
	}
	y := panicLineHeight
	for _, line := range lines {
		for len(line) > 0 && y <= c.Height() {
			chunk, rest := takeRunes(line, cols)
			c.Text(0, y, chunk)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	if err := c.Present(); err != nil {
		s.log.Error("panic screen", "err", err)
	}
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
