package tuiapp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/micutio/planefolio/internal"
)

// Error types

var errColumnMismatch = errors.New("number of columns does not match number of format columns")

// Automated Table Formatting

type tableColumnSizingOption int

const (
	// fixed column width, regardless of table width.
	fixed tableColumnSizingOption = iota
	// relative column with, given as fraction of the total table width.
	relative
	// fill columns receive any remaining table space, evenly distributed.
	fill
)

type columnFormat struct {
	option tableColumnSizingOption
	value  float32
}

type tableFormat struct {
	columnSizes        []columnFormat
	fixedWidth         int     // fixedWidth is the total space taken up by all fixed-width columns.
	fillWidthCount     int     // fillWidthCount indicates how many columns have fill width.
	totalRelativeWidth float32 // how much width is taken by relative columns.
}

func newTableFormat(items ...columnFormat) tableFormat {
	var totalRelativeWidth float32
	fixedWidth := 0
	fillWidthCount := 0

	for _, item := range items {
		switch item.option {
		case relative:
			totalRelativeWidth += item.value
		case fixed:
			fixedWidth += int(item.value)
		case fill:
			fillWidthCount++
		}
	}

	return tableFormat{
		columnSizes:        items,
		fixedWidth:         fixedWidth,
		fillWidthCount:     fillWidthCount,
		totalRelativeWidth: totalRelativeWidth,
	}
}

// Integrated Formatted Table Type

type autoFormatTable struct {
	table  table.Model
	format tableFormat
}

// resize distributes newWidth over the columns. Cells are padded by one on either side, so two
// cells per column are taken off before the column widths are computed.
func (aft *autoFormatTable) resize(newWidth int) error {
	columns := aft.table.Columns()
	columnCount := len(columns)
	if columnCount != len(aft.format.columnSizes) {
		return fmt.Errorf(
			"table.resize: %w -> %d in table, %d in tableFormat",
			errColumnMismatch,
			columnCount,
			len(aft.format.columnSizes))
	}

	aft.table.SetWidth(max(newWidth, 0))
	adjustedWidth := max(newWidth-2*columnCount, 0)

	totalRelativeWidth := int(float32(adjustedWidth) * aft.format.totalRelativeWidth)
	totalFillWidth := adjustedWidth - totalRelativeWidth - aft.format.fixedWidth
	fillPerColumn := 0
	if aft.format.fillWidthCount > 0 {
		fillPerColumn = max(totalFillWidth/aft.format.fillWidthCount, 0)
	}

	for idx := range columnCount {
		format := aft.format.columnSizes[idx]
		switch format.option {
		case fixed:
			columns[idx].Width = int(format.value)
		case relative:
			columns[idx].Width = int(format.value * float32(adjustedWidth))
		case fill:
			columns[idx].Width = fillPerColumn
		}
	}
	aft.table.SetColumns(columns)

	return nil
}

func (aft *autoFormatTable) SetHeight(height int) {
	aft.table.SetHeight(height)
}

// setRows replaces the rows and keeps the cursor on an existing row.
// An empty table leaves the cursor at -1, it is moved back to the first row once rows return.
func (aft *autoFormatTable) setRows(rows []table.Row) {
	aft.table.SetRows(rows)
	if len(rows) > 0 && aft.table.Cursor() < 0 {
		aft.table.SetCursor(0)
	}
}

func newPhotoTable(tableStyle table.Styles) autoFormatTable {
	indexLen := 4
	captionLen := 24
	sourceLen := 24
	initialTableHeight := 5
	format := newTableFormat(
		columnFormat{fixed, float32(indexLen)},
		columnFormat{fill, 0.0},
		columnFormat{relative, 0.4},
	)

	photoTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "#", Width: indexLen},
				{Title: "Caption", Width: captionLen},
				{Title: "Source", Width: sourceLen},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  photoTbl,
		format: format,
	}
}

func newSummaryTable(tableStyle table.Styles) autoFormatTable {
	countLen := 8
	categoryNameLen := 16
	initialTableHeight := 5
	format := newTableFormat(
		columnFormat{fill, 0.0},
		columnFormat{fixed, float32(countLen)},
	)

	// Create a new table with specified columns and initial empty rows.
	summaryTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "Category", Width: categoryNameLen},
				{Title: "Photos", Width: countLen},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  summaryTbl,
		format: format,
	}
}

func photoToRow(index int, image internal.ImageRecord) table.Row {
	return table.Row{strconv.Itoa(index + 1), image.Alt, image.Src}
}

func photosToRows(images []internal.ImageRecord) []table.Row {
	rows := make([]table.Row, 0, len(images))
	for idx, image := range images {
		rows = append(rows, photoToRow(idx, image))
	}
	return rows
}

func categoryCountToRow(count internal.CategoryCount) table.Row {
	return table.Row{count.Category, fmt.Sprintf("%5d", count.Count)}
}
