package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/network-cards/network-cards/domain/card"
)

const sheetName = "Sheet1"

// ExcelOptions configures the spreadsheet renderer. The zero value means
// formatted output with the default widths and zoom.
type ExcelOptions struct {
	// Plain skips all formatting: no column widths, wraps, zoom, or panel
	// frames.
	Plain bool
	// LabelWidth is the label column width. Default 19.
	LabelWidth float64
	// ValueWidth is the width of each value column. Default 35 for a
	// single card, 30 for a multicard.
	ValueWidth float64
	// Zoom is the sheet zoom percentage. Default 150.
	Zoom float64
}

func (o *ExcelOptions) withDefaults(columns int) ExcelOptions {
	opts := ExcelOptions{}
	if o != nil {
		opts = *o
	}
	if opts.LabelWidth == 0 {
		opts.LabelWidth = 19
	}
	if opts.ValueWidth == 0 {
		opts.ValueWidth = 35
		if columns > 1 {
			opts.ValueWidth = 30
		}
	}
	if opts.Zoom == 0 {
		opts.Zoom = 150
	}
	return opts
}

// Excel renders the table into a spreadsheet: one row per field with the
// label in column A and one value column per card, the footnote legend as
// trailing rows in the first value column, and each panel's row block framed
// with a border. The caller owns the returned file and its Close.
func Excel(t card.Table, opts *ExcelOptions) (*excelize.File, error) {
	o := opts.withDefaults(t.Columns)

	marks, legend := assignMarks(t.Rows, 1, func(num int, _ bool, _ string) string {
		return strconv.Itoa(num)
	})

	f := excelize.NewFile()
	for i, row := range t.Rows {
		label := row.Field
		if len(marks[i]) > 0 {
			label += " (" + strings.Join(marks[i], ",") + ")"
		}
		if err := setCell(f, 1, i+1, label); err != nil {
			return nil, err
		}
		for j, v := range row.Values {
			if err := setCell(f, 2+j, i+1, v); err != nil {
				return nil, err
			}
		}
	}
	for i, l := range legend {
		if err := setCell(f, 2, len(t.Rows)+1+i, fmt.Sprintf("%d: %s", l.Num, l.Text)); err != nil {
			return nil, err
		}
	}

	if !o.Plain {
		if err := formatSheet(f, t, o); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteExcel renders the table and saves it to path. The file handle is
// released whether or not the save succeeds; on error the output file may be
// incomplete.
func WriteExcel(t card.Table, path string, opts *ExcelOptions) error {
	f, err := Excel(t, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheetName, cell, value)
}

func formatSheet(f *excelize.File, t card.Table, o ExcelOptions) error {
	showGrid := false
	if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{
		ShowGridLines: &showGrid,
		ZoomScale:     &o.Zoom,
	}); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "A", o.LabelWidth); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(1 + t.Columns)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", lastCol, o.ValueWidth); err != nil {
		return err
	}

	styles := newStyleCache(f)
	wrapStyle, err := styles.plain(true)
	if err != nil {
		return err
	}
	if err := f.SetColStyle(sheetName, "B:"+lastCol, wrapStyle); err != nil {
		return err
	}
	labelStyle, err := styles.plain(false)
	if err != nil {
		return err
	}
	if err := f.SetColStyle(sheetName, "A", labelStyle); err != nil {
		return err
	}

	// Frame each panel's contiguous row block across all columns.
	sizes := t.PanelSizes()
	offset := 0
	for _, kind := range card.PanelKinds() {
		if err := drawFrame(f, styles, offset, 0, sizes[kind], 1+t.Columns); err != nil {
			return err
		}
		offset += sizes[kind]
	}
	return nil
}

// drawFrame applies the frame decomposition to the sheet. Wrapping follows
// the column role: cells in the label column stay unwrapped.
func drawFrame(f *excelize.File, styles *styleCache, firstRow, firstCol, rows, cols int) error {
	for _, region := range frameRegions(firstRow, firstCol, rows, cols) {
		for r := region.r0; r <= region.r1; r++ {
			for c := region.c0; c <= region.c1; c++ {
				styleID, err := styles.bordered(region.edges, c > 0)
				if err != nil {
					return err
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, styleID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// styleCache deduplicates excelize style registrations within one render.
type styleCache struct {
	f     *excelize.File
	cache map[styleKey]int
}

type styleKey struct {
	edges borderEdges
	wrap  bool
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, cache: make(map[styleKey]int)}
}

func (s *styleCache) plain(wrap bool) (int, error) {
	return s.bordered(borderEdges{}, wrap)
}

func (s *styleCache) bordered(edges borderEdges, wrap bool) (int, error) {
	key := styleKey{edges: edges, wrap: wrap}
	if id, ok := s.cache[key]; ok {
		return id, nil
	}

	var borders []excelize.Border
	for _, side := range []struct {
		name string
		on   bool
	}{
		{"top", edges.top},
		{"bottom", edges.bottom},
		{"left", edges.left},
		{"right", edges.right},
	} {
		if side.on {
			borders = append(borders, excelize.Border{Type: side.name, Color: "000000", Style: 1})
		}
	}

	id, err := s.f.NewStyle(&excelize.Style{
		Border: borders,
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   wrap,
		},
	})
	if err != nil {
		return 0, err
	}
	s.cache[key] = id
	return id, nil
}
