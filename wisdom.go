package algogpp

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-gpp/internal/kernel"
)

// Wisdom caches the fastest measured strategy per problem shape. KernelAuto
// consults the default cache before sizing heuristics.
type Wisdom = kernel.Wisdom

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return kernel.NewWisdom()
}

// RecordDecision stores the preferred strategy for a problem shape in the
// default cache. Benchmark harnesses call this with their measured winner.
func RecordDecision(numBands, ngpown, ncouls int, s Strategy) {
	kernel.DefaultWisdom.Record(kernel.Shape{Bands: numBands, NGPown: ngpown, NCouls: ncouls}, s)
}

// ImportWisdom loads wisdom data from a file in the format produced by
// ExportWisdom and merges it into the default cache.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := kernel.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves the default wisdom cache to a file.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, kernel.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer f.Close()

	if err := wisdom.Export(f); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}
