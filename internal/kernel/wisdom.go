package kernel

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Shape identifies a problem size for wisdom lookups.
type Shape struct {
	Bands  int
	NGPown int
	NCouls int
}

// Wisdom caches the fastest strategy measured for a problem shape. It is
// safe for concurrent use.
type Wisdom struct {
	mu   sync.RWMutex
	best map[Shape]Strategy
}

// DefaultWisdom is the process-wide cache consulted by KernelAuto.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{best: make(map[Shape]Strategy)}
}

// Record stores the preferred strategy for a shape, replacing any previous
// entry.
func (w *Wisdom) Record(shape Shape, strat Strategy) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.best[shape] = strat
}

// Lookup returns the recorded strategy for a shape, if any.
func (w *Wisdom) Lookup(shape Shape) (Strategy, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.best[shape]

	return s, ok
}

// Len returns the number of recorded shapes.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.best)
}

const wisdomHeader = "algo-gpp wisdom v1"

// Export writes the cache in a line-oriented text format:
//
//	algo-gpp wisdom v1
//	<bands> <ngpown> <ncouls> <strategy>
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if _, err := fmt.Fprintln(out, wisdomHeader); err != nil {
		return err
	}

	for shape, strat := range w.best {
		if _, err := fmt.Fprintf(out, "%d %d %d %s\n", shape.Bands, shape.NGPown, shape.NCouls, strat); err != nil {
			return err
		}
	}

	return nil
}

// Import merges entries from the Export format into the cache.
func (w *Wisdom) Import(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	if !scanner.Scan() {
		return fmt.Errorf("kernel: empty wisdom input")
	}

	if got := strings.TrimSpace(scanner.Text()); got != wisdomHeader {
		return fmt.Errorf("kernel: bad wisdom header %q", got)
	}

	lineNo := 1

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var (
			shape Shape
			name  string
		)

		if _, err := fmt.Sscanf(line, "%d %d %d %s", &shape.Bands, &shape.NGPown, &shape.NCouls, &name); err != nil {
			return fmt.Errorf("kernel: wisdom line %d: %w", lineNo, err)
		}

		strat, err := ParseStrategy(name)
		if err != nil {
			return fmt.Errorf("kernel: wisdom line %d: %w", lineNo, err)
		}

		w.Record(shape, strat)
	}

	return scanner.Err()
}
