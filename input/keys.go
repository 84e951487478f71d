// Package input tracks keyboard state across frames.
//
// Keys is fed key-down and key-up notifications during a frame, queried by
// scenes, and advanced once at the end of the frame:
//
//	for ev := range events { keys.Apply(ev) }
//	scene.Update(keys)
//	keys.Advance()
package input

import "renderdemon/hal"

// Keys records which keys are held now and which were held at the end of
// the previous frame.
type Keys struct {
	cur  [hal.KeyCount]bool
	prev [hal.KeyCount]bool
}

// KeyDown marks k as held.
func (s *Keys) KeyDown(k hal.KeyCode) {
	if k < hal.KeyCount {
		s.cur[k] = true
	}
}

// KeyUp marks k as released.
func (s *Keys) KeyUp(k hal.KeyCode) {
	if k < hal.KeyCount {
		s.cur[k] = false
	}
}

// Apply feeds a keyboard event.
func (s *Keys) Apply(ev hal.KeyEvent) {
	if ev.Press {
		s.KeyDown(ev.Code)
	} else {
		s.KeyUp(ev.Code)
	}
}

// Drain applies every event currently queued on ch without blocking.
func (s *Keys) Drain(ch <-chan hal.KeyEvent) int {
	n := 0
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return n
			}
			s.Apply(ev)
			n++
		default:
			return n
		}
	}
}

// Held reports whether k is down.
func (s *Keys) Held(k hal.KeyCode) bool {
	return k < hal.KeyCount && s.cur[k]
}

// Pressed reports whether k went down this frame.
func (s *Keys) Pressed(k hal.KeyCode) bool {
	return k < hal.KeyCount && s.cur[k] && !s.prev[k]
}

// Released reports whether k went up this frame.
func (s *Keys) Released(k hal.KeyCode) bool {
	return k < hal.KeyCount && !s.cur[k] && s.prev[k]
}

// Advance ends the frame. Call it once after the frame's input has been
// consumed.
func (s *Keys) Advance() {
	s.prev = s.cur
}
