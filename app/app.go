package app

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/image/colornames"

	"renderdemon/hal"
	"renderdemon/input"
	"renderdemon/raster"
	"renderdemon/scene"
)

// ErrQuit is returned by the step function when the user asks to quit.
var ErrQuit = errors.New("quit")

type Config struct {
	// Scene is the scene shown first. Empty selects the first registered
	// scene.
	Scene    string
	LogLevel slog.Level
	NoHUD    bool
	// HoldOnPanic keeps the panic screen up until Escape instead of
	// stopping at once.
	HoldOnPanic bool
}

type system struct {
	h      hal.HAL
	cfg    Config
	log    *slog.Logger
	canvas *raster.Canvas
	keys   input.Keys

	names  []string
	scenes []scene.Scene
	cur    int

	frame  uint64
	ticks  uint64
	failed error
}

// NewWithConfig sets up the canvas and scenes and returns the per-frame
// step function. Setup errors are returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	log := newLogger(h.Logger(), cfg.LogLevel)
	raster.SetLogger(log)

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGBX8888 {
		return nil, fmt.Errorf("app: framebuffer format %d: %w", fb.Format(), hal.ErrNotImplemented)
	}

	s := &system{
		h:      h,
		cfg:    cfg,
		log:    log,
		canvas: raster.New(fb.Width(), fb.Height(), fb),
		names:  scene.Names(),
	}
	s.scenes = make([]scene.Scene, len(s.names))
	name := cfg.Scene
	if name == "" {
		name = s.names[0]
	}
	if _, err := s.open(name); err != nil {
		return nil, err
	}

	s.canvas.SetClearColor(0, 0, 0)
	s.canvas.SetDrawColor(0xFF, 0xFF, 0xFF)
	log.Info("app started", "scene", s.names[s.cur], "width", fb.Width(), "height", fb.Height())
	return s, nil
}

// open makes the named scene current, creating it on first use.
func (s *system) open(name string) (scene.Scene, error) {
	for i, n := range s.names {
		if n != name {
			continue
		}
		if s.scenes[i] == nil {
			sc, err := scene.New(name)
			if err != nil {
				return nil, err
			}
			s.scenes[i] = sc
		}
		s.cur = i
		return s.scenes[i], nil
	}
	_, err := scene.New(name)
	return nil, err
}

func (s *system) current() scene.Scene { return s.scenes[s.cur] }

func (s *system) next() {
	name := s.names[(s.cur+1)%len(s.names)]
	if _, err := s.open(name); err != nil {
		s.log.Warn("scene switch failed", "scene", name, "err", err)
		return
	}
	s.log.Info("scene", "name", name, "frame", s.frame)
}

func (s *system) step() (err error) {
	if kbd := s.h.Input().Keyboard(); kbd != nil {
		s.keys.Drain(kbd.Events())
	}
	s.drainTicks()

	if s.failed != nil {
		if s.keys.Pressed(hal.KeyEscape) {
			return s.failed
		}
		s.keys.Advance()
		return nil
	}
	if s.keys.Pressed(hal.KeyEscape) {
		return ErrQuit
	}

	defer func() {
		if r := recover(); r != nil {
			err = s.panicked(r)
		}
	}()

	if s.keys.Pressed(hal.KeyTab) {
		s.next()
	}

	s.canvas.Clear()
	sc := s.current()
	sc.Update(&s.keys)
	sc.Render(s.canvas)
	s.canvas.ResetView()
	if !s.cfg.NoHUD {
		s.hud(sc.Name())
	}
	if err := s.canvas.Present(); err != nil {
		return fmt.Errorf("app: frame %d: %w", s.frame, err)
	}

	s.keys.Advance()
	s.frame++
	return nil
}

func (s *system) drainTicks() {
	t := s.h.Time()
	if t == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case seq := <-ch:
			s.ticks = seq
		default:
			return
		}
	}
}

func (s *system) hud(name string) {
	line := fmt.Sprintf("%s  frame %d  %.1fs", name, s.frame, float64(s.ticks)/1000)
	s.canvas.SetDrawColorRGBA(colornames.White)
	s.canvas.Text(4, s.canvas.Height()-4, line)
}
