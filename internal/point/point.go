// Package point defines the Point and Range value types shared across the
// engine's components. They mirror tree-sitter's own point/byte range
// representation so conversions at the CST boundary stay mechanical.
package point

// Point is a 0-indexed (row, column) position in a source file.
type Point struct {
	Row    int
	Column int
}

// Less reports whether p sorts strictly before other.
func (p Point) Less(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

// Range is a half-open span in both point and byte coordinates.
type Range struct {
	StartPoint Point
	EndPoint   Point
	StartByte  int
	EndByte    int
}

// Contains reports whether p falls within [r.StartPoint, r.EndPoint).
func (r Range) Contains(p Point) bool {
	return !p.Less(r.StartPoint) && p.Less(r.EndPoint)
}

// ContainsByte reports whether the byte offset b falls within
// [r.StartByte, r.EndByte).
func (r Range) ContainsByte(b int) bool {
	return b >= r.StartByte && b < r.EndByte
}

// Overlaps reports whether r and other share any byte.
func (r Range) Overlaps(other Range) bool {
	return r.StartByte < other.EndByte && other.StartByte < r.EndByte
}
