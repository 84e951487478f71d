package main

import (
	"math/rand/v2"
	"strings"
	"time"

	"renderdemon/raster"
)

const scoreScale = 1000

type benchTest struct {
	name string
	// run draws roughly one buffer's worth of pixels.
	run func(c *raster.Canvas, rng *rand.Rand)
}

type result struct {
	name  string
	dur   time.Duration
	ops   uint64
	score uint64
}

func benchmarks(w, h int) []benchTest {
	base := w * h
	rx := func(rng *rand.Rand) int { return rng.IntN(w) }
	ry := func(rng *rand.Rand) int { return rng.IntN(h) }
	color := func(c *raster.Canvas, rng *rand.Rand) {
		c.SetDrawColor(uint8(rng.Uint32()), uint8(rng.Uint32()), uint8(rng.Uint32()))
	}
	avg := max((w+h)/2, 1)

	return []benchTest{
		{"Clear", func(c *raster.Canvas, rng *rand.Rand) {
			c.SetClearColor(uint8(rng.Uint32()), 0, 0)
			c.Clear()
		}},
		{"Points", func(c *raster.Canvas, rng *rand.Rand) {
			color(c, rng)
			for i := 0; i < base; i++ {
				c.Point(rx(rng), ry(rng))
			}
		}},
		{"Lines", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < base/avg; i++ {
				color(c, rng)
				c.Line(rx(rng), ry(rng), rx(rng), ry(rng))
			}
		}},
		{"HLines", func(c *raster.Canvas, rng *rand.Rand) {
			color(c, rng)
			for y := 0; y < h; y++ {
				c.HLine(y, 0, w-1)
			}
		}},
		{"Rects", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < base/(avg*2); i++ {
				color(c, rng)
				c.Rect(rx(rng), ry(rng), rx(rng), ry(rng))
			}
		}},
		{"Filled rects", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < 16; i++ {
				color(c, rng)
				x, y := rx(rng)/2, ry(rng)/2
				c.FillRect(x, y, x+w/2, y+h/2)
			}
		}},
		{"Circles", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < base/(avg*3); i++ {
				color(c, rng)
				c.Circle(rx(rng), ry(rng), rng.IntN(avg/2+1), 32)
			}
		}},
		{"Filled ellipses", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < 16; i++ {
				color(c, rng)
				c.FillEllipse(rx(rng), ry(rng), w/4, h/2)
			}
		}},
		{"Triangles", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < 8; i++ {
				color(c, rng)
				c.Triangle(rx(rng), ry(rng), rx(rng), ry(rng), rx(rng), ry(rng))
			}
		}},
		{"Quads", func(c *raster.Canvas, rng *rand.Rand) {
			for i := 0; i < 4; i++ {
				color(c, rng)
				x, y := rx(rng)/2, ry(rng)/2
				c.Quad(x, y, x+w/2, y+rng.IntN(h/8+1), x+w/2, y+h/2, x, y+h/2-rng.IntN(h/8+1))
			}
		}},
		{"Flood fill", func(c *raster.Canvas, rng *rand.Rand) {
			c.SetClearColor(0, 0, 0)
			c.Clear()
			c.SetDrawColor(0xFF, 0xFF, 0xFF)
			for i := 0; i < 8; i++ {
				c.Line(rx(rng), 0, rx(rng), h-1)
			}
			color(c, rng)
			c.Fill(0, 0)
		}},
	}
}

// runBenchmarks runs each test whose name contains only (case-insensitive)
// rounds times on c.
func runBenchmarks(c *raster.Canvas, rounds int, only string, seed uint64) []result {
	if rounds <= 0 {
		rounds = 1
	}
	base := uint64(c.Width() * c.Height())
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var out []result
	for _, bt := range benchmarks(c.Width(), c.Height()) {
		if only != "" && !strings.Contains(strings.ToLower(bt.name), strings.ToLower(only)) {
			continue
		}
		c.ResetView()
		start := time.Now()
		for i := 0; i < rounds; i++ {
			bt.run(c, rng)
		}
		d := max(time.Since(start), time.Nanosecond)
		ops := base * uint64(rounds)
		out = append(out, result{name: bt.name, dur: d, ops: ops, score: scoreFromOps(ops, d)})
	}
	return out
}

// scoreFromOps returns pixels per microsecond.
func scoreFromOps(ops uint64, d time.Duration) uint64 {
	ns := uint64(d.Nanoseconds())
	if ns == 0 {
		ns = 1
	}
	return ops * scoreScale / ns
}
