// Package scene holds the demo scenes drawn by the app loop.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"renderdemon/input"
	"renderdemon/raster"
)

var ErrUnknownScene = errors.New("unknown scene")

// Scene is one demo. Update runs once per frame before Render; all state
// lives in the scene value.
type Scene interface {
	Name() string
	Update(keys *input.Keys)
	Render(c *raster.Canvas)
}

var registry = []struct {
	name string
	new  func() Scene
}{
	{"primitives", func() Scene { return NewPrimitives() }},
	{"portal", func() Scene { return NewPortal() }},
}

// Names lists the registered scenes in cycle order.
func Names() []string {
	out := make([]string, len(registry))
	for i, r := range registry {
		out[i] = r.name
	}
	return out
}

// New returns a fresh instance of the named scene.
func New(name string) (Scene, error) {
	for _, r := range registry {
		if r.name == name {
			return r.new(), nil
		}
	}
	return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}
