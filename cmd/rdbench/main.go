package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"renderdemon/internal/buildinfo"
	"renderdemon/raster"
)

const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	successColor = "\x1b[32m"
)

func main() {
	var (
		width  = flag.Int("width", 640, "Canvas width.")
		height = flag.Int("height", 480, "Canvas height.")
		rounds = flag.Int("rounds", 10, "Passes per primitive.")
		only   = flag.String("only", "", "Run only tests whose name contains this string.")
		seed   = flag.Uint64("seed", 1, "Random seed.")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fatalf("usage: rdbench [-width 640] [-height 480] [-rounds 10] [-only name] [-seed 1]")
	}

	c := raster.New(*width, *height, nil)
	results := runBenchmarks(c, *rounds, *only, *seed)
	if len(results) == 0 {
		fatalf("no benchmark matches %q", *only)
	}
	report(os.Stdout, results, *width, *height, term.IsTerminal(int(os.Stdout.Fd())))
}

func report(w io.Writer, results []result, width, height int, color bool) {
	paint := func(c, s string) string {
		if !color {
			return s
		}
		return c + s + defaultColor
	}

	fmt.Fprintln(w, paint(statusColor, fmt.Sprintf("rdbench %s  %dx%d", buildinfo.Short(), width, height)))
	fmt.Fprintln(w, "Test                 time(ms)   px/us")
	var total uint64
	for _, r := range results {
		ms := float64(r.dur) / float64(time.Millisecond)
		fmt.Fprintf(w, "%-18s %10.2f %9s\n", r.name, ms, paint(successColor, fmt.Sprint(r.score)))
		total += r.score
	}
	fmt.Fprintf(w, "Total score: %d\n", total)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
