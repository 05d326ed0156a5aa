// Package ranges applies a slicer's deletion ranges to source text. It
// is deliberately line-based rather than byte-based: a range's start/end
// column only trims the partial line it falls on, and a line that has
// nothing but deleted content plus whitespace is dropped entirely.
//
// Grounded on original_source/slicer/src/slicer.rs's delete_ranges — the
// second, active definition in that file (the first is commented out and
// superseded; it assumed exactly one statement per line, which the
// active version no longer requires).
package ranges

import (
	"strings"

	"github.com/oxhq/sce/internal/point"
)

// Apply removes every range in rngs from src and returns the result
// together with anchor adjusted so it still refers to the same
// surviving token. ranges must be sorted by start position and
// non-overlapping, which is what slicer.Slice's coalesced output already
// guarantees, and anchor must not fall inside any of them.
//
// Anchor adjustment: for each range strictly above anchor, subtract its
// line span (end row minus start row), plus one more if either its
// prefix or its suffix was empty-whitespace (and so dropped rather than
// kept as a boundary line). This is deliberately the same
// imprecise-but-predictable line policy as the deletion itself, not a
// byte-exact line count.
func Apply(src string, rngs []point.Range, anchor point.Point) (string, point.Point) {
	if len(rngs) == 0 {
		return src, anchor
	}

	lines := strings.Split(src, "\n")
	var out []string

	adjustedRow := anchor.Row
	i := 0
	for _, r := range rngs {
		if i < r.StartPoint.Row {
			out = append(out, lines[i:r.StartPoint.Row]...)
		}

		prefix := lines[r.StartPoint.Row][:r.StartPoint.Column]
		keptPrefix := strings.TrimSpace(prefix) != ""
		if keptPrefix {
			out = append(out, prefix)
		}

		suffix := lines[r.EndPoint.Row][r.EndPoint.Column:]
		keptSuffix := strings.TrimSpace(suffix) != ""
		if keptSuffix {
			out = append(out, suffix)
		}

		if r.EndPoint.Row < anchor.Row {
			adjustedRow -= r.EndPoint.Row - r.StartPoint.Row
			if !keptPrefix || !keptSuffix {
				adjustedRow--
			}
		}

		i = r.EndPoint.Row + 1
	}
	out = append(out, lines[i:]...)

	return strings.Join(out, "\n"), point.Point{Row: adjustedRow, Column: anchor.Column}
}
