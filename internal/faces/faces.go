// internal/faces/faces.go
//
// Provides the card face catalog for the game engine.
//
// Responsibilities:
//   - Load face entries (asset path + display color) from an
//     environment-provided file or fall back to the embedded default catalog.
//   - Validate at startup that the catalog can satisfy the largest allowed
//     board (MaxPairs distinct faces).
//   - Supply Pick(n) used by the deck builder to select distinct faces.
//
// Catalog format (one entry per line):
//   <asset path>|<display color>
//
// Environment variables:
//   FACES_FILE=/path/to/catalog.txt
//
// Constraints:
//   • An asset path is an opaque equality-comparable token; the server never
//     opens it. Exactly two cards share a face within one game.
//   • Colors are presentation hints passed through to the client untouched.
//   • Initialization is run once (sync.Once).

package faces

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"
)

// MaxPairs is the largest board the catalog must be able to fill.
// Kept in sync with game.MaxPairs; validated in Init.
const MaxPairs = 12

//go:embed catalog.txt
var embeddedCatalog string

// Face is one catalog entry: an image reference and its display color.
type Face struct {
	Asset string
	Color string
}

var (
	initOnce   sync.Once
	catalog    []Face
	initialErr error
)

// Init loads the face catalog exactly once.
// Returns an error if the catalog cannot fill a MaxPairs board; this is the
// configuration failure that must prevent the server from starting, so that
// deck building never fails at runtime.
func Init() error {
	initOnce.Do(func() {
		var entries []Face
		var err error

		if path := os.Getenv("FACES_FILE"); path != "" {
			entries, err = readCatalogFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			entries = parseLines(embeddedCatalog)
		}

		if len(entries) < MaxPairs {
			initialErr = fmt.Errorf("faces: catalog has %d entries, need at least %d", len(entries), MaxPairs)
			return
		}
		catalog = entries
	})
	return initialErr
}

// readCatalogFile loads one "asset|color" entry per line from a file.
// Blank lines and lines starting with # are skipped.
func readCatalogFile(path string) ([]Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("faces: open catalog: %w", err)
	}
	defer f.Close()

	var out []Face
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if fc, ok := parseLine(sc.Text()); ok {
			out = append(out, fc)
		}
	}
	return out, sc.Err()
}

// parseLines processes the embedded multiline catalog.
func parseLines(s string) []Face {
	var out []Face
	for _, line := range strings.Split(s, "\n") {
		if fc, ok := parseLine(line); ok {
			out = append(out, fc)
		}
	}
	return out
}

// parseLine splits "asset|color". Entries without a color get defaultColor.
func parseLine(line string) (Face, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
		return Face{}, false
	}
	asset, color, found := strings.Cut(line, "|")
	asset = strings.TrimSpace(asset)
	if asset == "" {
		return Face{}, false
	}
	if !found || strings.TrimSpace(color) == "" {
		return Face{Asset: asset, Color: defaultColor}, true
	}
	return Face{Asset: asset, Color: strings.TrimSpace(color)}, true
}

const defaultColor = "#3498db"

// Pick returns the first n catalog faces as a fresh slice.
// Callers must have run Init; n beyond the catalog is truncated, which cannot
// happen for valid pair counts because Init enforced len(catalog) >= MaxPairs.
func Pick(n int) []Face {
	if n > len(catalog) {
		n = len(catalog)
	}
	out := make([]Face, n)
	copy(out, catalog[:n])
	return out
}

// Count reports how many faces are loaded.
func Count() int { return len(catalog) }
