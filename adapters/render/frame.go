package render

// borderEdges flags which sides of a cell range receive a border line.
type borderEdges struct {
	top, bottom, left, right bool
}

// frameRegion is a rectangular cell range (0-based, inclusive) with the
// border edges to draw on every cell in it.
type frameRegion struct {
	r0, c0, r1, c1 int
	edges          borderEdges
}

// frameRegions decomposes a frame drawn around a rows x cols block starting
// at (firstRow, firstCol) into styled cell ranges. The degenerate blocks get
// their own decompositions: a single cell is bordered on all four sides; a
// one-row block is a left cap, a top-and-bottom run, and a right cap; a
// one-column block is the transpose; a block of at least 2x2 needs four
// corner cells and four edge runs, none of them double-bordered.
func frameRegions(firstRow, firstCol, rows, cols int) []frameRegion {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	lastRow := firstRow + rows - 1
	lastCol := firstCol + cols - 1

	switch {
	case rows == 1 && cols == 1:
		return []frameRegion{
			{firstRow, firstCol, firstRow, firstCol, borderEdges{top: true, bottom: true, left: true, right: true}},
		}

	case rows == 1:
		regions := []frameRegion{
			{firstRow, firstCol, firstRow, firstCol, borderEdges{top: true, bottom: true, left: true}},
		}
		if cols > 2 {
			regions = append(regions, frameRegion{firstRow, firstCol + 1, firstRow, lastCol - 1, borderEdges{top: true, bottom: true}})
		}
		return append(regions, frameRegion{firstRow, lastCol, firstRow, lastCol, borderEdges{top: true, bottom: true, right: true}})

	case cols == 1:
		regions := []frameRegion{
			{firstRow, firstCol, firstRow, firstCol, borderEdges{top: true, left: true, right: true}},
		}
		if rows > 2 {
			regions = append(regions, frameRegion{firstRow + 1, firstCol, lastRow - 1, firstCol, borderEdges{left: true, right: true}})
		}
		return append(regions, frameRegion{lastRow, firstCol, lastRow, firstCol, borderEdges{bottom: true, left: true, right: true}})

	default:
		regions := []frameRegion{
			{firstRow, firstCol, firstRow, firstCol, borderEdges{top: true, left: true}},
			{firstRow, lastCol, firstRow, lastCol, borderEdges{top: true, right: true}},
			{lastRow, firstCol, lastRow, firstCol, borderEdges{bottom: true, left: true}},
			{lastRow, lastCol, lastRow, lastCol, borderEdges{bottom: true, right: true}},
		}
		if cols > 2 {
			regions = append(regions,
				frameRegion{firstRow, firstCol + 1, firstRow, lastCol - 1, borderEdges{top: true}},
				frameRegion{lastRow, firstCol + 1, lastRow, lastCol - 1, borderEdges{bottom: true}},
			)
		}
		if rows > 2 {
			regions = append(regions,
				frameRegion{firstRow + 1, firstCol, lastRow - 1, firstCol, borderEdges{left: true}},
				frameRegion{firstRow + 1, lastCol, lastRow - 1, lastCol, borderEdges{right: true}},
			)
		}
		return regions
	}
}
