package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/webbmaffian/go-chainmap/chainmap"
)

// Renders insert progress in place on a terminal, and falls back to a log
// line per resize otherwise.
type progress struct {
	writer   *uilive.Writer
	inserted io.Writer
	capacity io.Writer
	resizes  io.Writer
	total    int
	lastCap  int
}

func newProgress(f *os.File, total int) *progress {
	p := &progress{
		total: total,
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return p
	}

	p.writer = uilive.New()
	p.writer.Out = f
	p.inserted = p.writer.Newline()
	p.capacity = p.writer.Newline()
	p.resizes = p.writer.Newline()

	return p
}

func (p *progress) update(inserted int, s chainmap.Stats) {
	if p.writer == nil {
		if p.lastCap != 0 && s.Cap != p.lastCap {
			log.Printf("Grew from %d to %d buckets after %d keys", p.lastCap, s.Cap, inserted)
		}

		p.lastCap = s.Cap
		return
	}

	fmt.Fprintf(p.inserted, "Inserted: %d/%d\n", inserted, p.total)
	fmt.Fprintf(p.capacity, "Capacity: %d (threshold %.0f)\n", s.Cap, float64(s.Cap)*s.LoadFactor)
	fmt.Fprintf(p.resizes, "Resizes: %d\n", s.Resizes)

	if err := p.writer.Flush(); err != nil {
		log.Println(err)
	}
}
