package tuiapp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/planefolio/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormat(t *testing.T) {
	tests := []struct {
		name                       string
		format                     tableFormat
		expectedFixedWidth         int
		expectedFillWidthCount     int
		expectedTotalRelativeWidth float32
	}{
		{
			name:                       "singleFixed",
			format:                     newTableFormat(columnFormat{fixed, 10.0}),
			expectedFixedWidth:         10,
			expectedFillWidthCount:     0,
			expectedTotalRelativeWidth: 0.0,
		},
		{
			name:                       "singleRelative",
			format:                     newTableFormat(columnFormat{relative, 0.254}),
			expectedFixedWidth:         0,
			expectedFillWidthCount:     0,
			expectedTotalRelativeWidth: 0.254,
		},
		{
			name:                       "singleFill",
			format:                     newTableFormat(columnFormat{fill, 0.0}),
			expectedFixedWidth:         0,
			expectedFillWidthCount:     1,
			expectedTotalRelativeWidth: 0.0,
		},
		{
			name: "multiFill",
			format: newTableFormat(
				columnFormat{fill, 0},
				columnFormat{fixed, 90},
				columnFormat{fill, 0},
				columnFormat{relative, 0.67},
				columnFormat{fill, 0},
			),
			expectedFixedWidth:         90,
			expectedFillWidthCount:     3,
			expectedTotalRelativeWidth: 0.67,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expectedFixedWidth, test.format.fixedWidth)
			assert.Equal(t, test.expectedFillWidthCount, test.format.fillWidthCount)
			assert.InDelta(t, test.expectedTotalRelativeWidth, test.format.totalRelativeWidth, 1e-6)
		})
	}
}

func TestAutoFormatTableResize(t *testing.T) {
	tests := []struct {
		name                            string
		columns                         []table.Column
		tableFormat                     tableFormat
		resizeWidth                     int
		expectedTableWidthAfterResize   int
		expectedColumnWidthsAfterResize []int
	}{
		{
			name:                            "SingleColumnFixed",
			columns:                         []table.Column{{Title: "A", Width: 3}},
			tableFormat:                     newTableFormat(columnFormat{fixed, 10.0}),
			resizeWidth:                     20,
			expectedTableWidthAfterResize:   20,
			expectedColumnWidthsAfterResize: []int{10},
		},
		{
			name:                            "SingleColumnRelative",
			columns:                         []table.Column{{Title: "A", Width: 5}},
			tableFormat:                     newTableFormat(columnFormat{relative, .5}),
			resizeWidth:                     40,
			expectedTableWidthAfterResize:   40,
			expectedColumnWidthsAfterResize: []int{19},
		},
		{
			name:                            "SingleColumnFill",
			columns:                         []table.Column{{Title: "A", Width: 10}},
			tableFormat:                     newTableFormat(columnFormat{fill, .0}),
			resizeWidth:                     15,
			expectedTableWidthAfterResize:   15,
			expectedColumnWidthsAfterResize: []int{13},
		},
		{
			name: "PhotoColumns",
			columns: []table.Column{
				{Title: "#", Width: 4},
				{Title: "Caption", Width: 24},
				{Title: "Source", Width: 24},
			},
			tableFormat: newTableFormat(
				columnFormat{fixed, 4},
				columnFormat{fill, 0},
				columnFormat{relative, 0.4},
			),
			resizeWidth:                     60,
			expectedTableWidthAfterResize:   60,
			expectedColumnWidthsAfterResize: []int{4, 29, 21},
		},
		{
			name:                            "TooNarrow",
			columns:                         []table.Column{{Title: "A", Width: 10}},
			tableFormat:                     newTableFormat(columnFormat{fill, 0}),
			resizeWidth:                     1,
			expectedTableWidthAfterResize:   1,
			expectedColumnWidthsAfterResize: []int{0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			aft := autoFormatTable{
				table:  table.New(table.WithColumns(test.columns)),
				format: test.tableFormat,
			}

			require.NoError(t, aft.resize(test.resizeWidth))
			assert.Equal(t, test.expectedTableWidthAfterResize, aft.table.Width())

			widths := []int{}
			for _, col := range aft.table.Columns() {
				widths = append(widths, col.Width)
			}
			assert.Equal(t, test.expectedColumnWidthsAfterResize, widths)
		})
	}
}

func TestAutoFormatTableColumnMismatch(t *testing.T) {
	aft := autoFormatTable{
		table:  table.New(table.WithColumns([]table.Column{{Title: "A"}, {Title: "B"}})),
		format: newTableFormat(columnFormat{fill, 0}),
	}

	assert.ErrorIs(t, aft.resize(40), errColumnMismatch)
}

func TestRenderedTableFitsWidth(t *testing.T) {
	for _, width := range []int{30, 60, 116} {
		aft := newPhotoTable(table.DefaultStyles())
		aft.setRows(photosToRows(internal.DefaultCatalog().Images("Private")))
		require.NoError(t, aft.resize(width))

		for _, line := range strings.Split(aft.table.View(), "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "line %q", line)
		}
	}
}

func TestSetRowsClampsCursor(t *testing.T) {
	photos := internal.DefaultCatalog().Images("Commercial")
	aft := newPhotoTable(table.DefaultStyles())
	aft.setRows(photosToRows(photos))
	aft.table.MoveDown(1)
	require.Equal(t, 1, aft.table.Cursor())

	aft.setRows(photosToRows(photos[:1]))
	assert.Equal(t, 0, aft.table.Cursor())
}

func TestSetRowsCursorAfterEmptyRows(t *testing.T) {
	photos := internal.DefaultCatalog().Images("Commercial")
	aft := newPhotoTable(table.DefaultStyles())
	aft.setRows(photosToRows(photos))

	aft.setRows(nil)
	assert.Empty(t, aft.table.SelectedRow())

	aft.setRows(photosToRows(photos))
	assert.Equal(t, 0, aft.table.Cursor())
	assert.Equal(t, "Boeing 747", aft.table.SelectedRow()[1])
}

func TestRows(t *testing.T) {
	image := internal.ImageRecord{Src: "/planes/military1.jpg", Alt: "F-22 Raptor"}
	assert.Equal(t, table.Row{"3", "F-22 Raptor", "/planes/military1.jpg"}, photoToRow(2, image))

	count := internal.CategoryCount{Category: "Private", Count: 2}
	assert.Equal(t, table.Row{"Private", "    2"}, categoryCountToRow(count))
}
