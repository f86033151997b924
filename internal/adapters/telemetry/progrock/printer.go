package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Printer)(nil)

// Printer renders completed vertices from a progrock status stream as one line each.
type Printer struct {
	mu   sync.Mutex
	w    io.Writer
	done map[string]bool
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, done: make(map[string]bool)}
}

// WriteStatus prints every vertex of update that completed since the last update.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil || p.done[v.Id] {
			continue
		}
		p.done[v.Id] = true

		var err error
		switch {
		case v.Error != nil:
			_, err = fmt.Fprintf(p.w, "✗ %s: %s\n", v.Name, *v.Error)
		case v.Cached:
			_, err = fmt.Fprintf(p.w, "• %s (cached)\n", v.Name)
		default:
			_, err = fmt.Fprintf(p.w, "✓ %s\n", v.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (p *Printer) Close() error {
	return nil
}
