package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/point"
	"github.com/oxhq/sce/internal/ranges"
)

func TestApplyNoRangesReturnsSourceAndAnchorUnchanged(t *testing.T) {
	src := "a\nb\nc"
	anchor := point.Point{Row: 2, Column: 0}

	out, adjusted := ranges.Apply(src, nil, anchor)
	require.Equal(t, src, out)
	require.Equal(t, anchor, adjusted)
}

func TestApplyDropsWholeLineWhenFullyDeleted(t *testing.T) {
	src := "line0\nline1\nline2\n"
	r := point.Range{
		StartPoint: point.Point{Row: 1, Column: 0},
		EndPoint:   point.Point{Row: 1, Column: 5},
	}

	out, _ := ranges.Apply(src, []point.Range{r}, point.Point{Row: 0, Column: 0})
	require.Equal(t, "line0\nline2\n", out)
}

func TestApplyKeepsNonWhitespacePrefixAndSuffix(t *testing.T) {
	src := "x = 1; y = 2\n"
	r := point.Range{
		StartPoint: point.Point{Row: 0, Column: 7},
		EndPoint:   point.Point{Row: 0, Column: 12},
	}

	out, _ := ranges.Apply(src, []point.Range{r}, point.Point{Row: 0, Column: 0})
	require.Equal(t, "x = 1; \n", out)
}

func TestApplyHandlesMultipleRangesInOrder(t *testing.T) {
	src := "a\nb\nc\nd\n"
	rngs := []point.Range{
		{StartPoint: point.Point{Row: 1, Column: 0}, EndPoint: point.Point{Row: 1, Column: 1}},
		{StartPoint: point.Point{Row: 3, Column: 0}, EndPoint: point.Point{Row: 3, Column: 1}},
	}

	out, _ := ranges.Apply(src, rngs, point.Point{Row: 0, Column: 0})
	require.Equal(t, "a\nc\n", out)
}

func TestApplyLeavesAnchorUnadjustedWhenNoRangeIsAboveIt(t *testing.T) {
	src := "a\nb\nc\nd\n"
	r := point.Range{
		StartPoint: point.Point{Row: 2, Column: 0},
		EndPoint:   point.Point{Row: 2, Column: 1},
	}
	anchor := point.Point{Row: 0, Column: 0}

	_, adjusted := ranges.Apply(src, []point.Range{r}, anchor)
	require.Equal(t, anchor, adjusted)
}

// Deleting the whole of row 1 ("b") above the anchor: the line span is 0,
// plus one because both boundaries were empty-whitespace, so the anchor
// on "d" moves from row 3 to row 2, where "d" sits in "a\nc\nd\n".
func TestApplyAdjustsAnchorRowForRangeAboveIt(t *testing.T) {
	src := "a\nb\nc\nd\n"
	r := point.Range{
		StartPoint: point.Point{Row: 1, Column: 0},
		EndPoint:   point.Point{Row: 1, Column: 1},
	}
	anchor := point.Point{Row: 3, Column: 2}

	_, adjusted := ranges.Apply(src, []point.Range{r}, anchor)
	require.Equal(t, point.Point{Row: 2, Column: 2}, adjusted)
}

func TestApplyOnlyCountsRangesStrictlyAboveAnchor(t *testing.T) {
	src := "a\nb\nc\nd\ne\n"
	rngs := []point.Range{
		{StartPoint: point.Point{Row: 0, Column: 0}, EndPoint: point.Point{Row: 0, Column: 1}},
		{StartPoint: point.Point{Row: 3, Column: 0}, EndPoint: point.Point{Row: 3, Column: 1}},
	}
	anchor := point.Point{Row: 2, Column: 0}

	_, adjusted := ranges.Apply(src, rngs, anchor)
	require.Equal(t, 1, adjusted.Row, "only the range ending before row 2 should count")
}
