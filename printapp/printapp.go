// Package printapp launches the print application which writes the portfolio to stdout, where it
// can be piped into other programs and processed further.
// This is in contrast to the TUI app, which is interactive.
package printapp

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/micutio/planefolio/internal"
)

var errNoConsole = errors.New("no console output")

// Options select what is printed besides the summary.
type Options struct {
	ByCount bool // order the summary from the smallest to the largest gallery
}

// Printer writes portfolio sections to the console output.
type Printer struct {
	Stdout *log.Logger
}

func NewPrinter(consoleOut io.Writer) *Printer {
	return &Printer{
		Stdout: log.New(consoleOut, "", 0),
	}
}

// PrintSummary prints the photo count of every gallery, like the gallery list page.
func (printer *Printer) PrintSummary(catalog *internal.Catalog, byCount bool) {
	counts := internal.Summarize(catalog)
	if byCount {
		counts = internal.SortedByCount(counts)
	}

	printer.Stdout.Println("=== All Galleries ===")
	for _, count := range counts {
		printer.Stdout.Println(count.String())
	}
}

// PrintGallery prints the photos of every category which match the current filter.
func (printer *Printer) PrintGallery(controller *internal.ViewController) {
	filtered := controller.FilteredCategories()

	if query := controller.FilterQuery(); query != "" {
		printer.Stdout.Printf("=== Gallery (search %q) ===\n", query)
	} else {
		printer.Stdout.Println("=== Gallery ===")
	}

	for _, category := range filtered.Categories() {
		printer.Stdout.Println(category)
		images := filtered.Images(category)
		if len(images) == 0 {
			printer.Stdout.Println("  (no matching photos)")
			continue
		}
		for idx, image := range images {
			printer.Stdout.Printf("%3d. %s (%s)\n", idx+1, image.Alt, image.Src)
		}
	}

	total := internal.TotalPhotos(internal.Summarize(controller.Catalog()))
	printer.Stdout.Printf("=== %d of %d photo(s) shown ===\n", filtered.TotalMatches(), total)
}

// Run prints the portfolio once and returns.
func Run(appName string, params internal.LogParams, cfg *internal.AppConfig, catalog *internal.Catalog, opts Options) error {
	if params.ConsoleOut == nil {
		return fmt.Errorf("printapp.Run: %w", errNoConsole)
	}

	logger := params.ErrorLogger()
	printer := NewPrinter(params.ConsoleOut)
	controller := internal.NewViewController(catalog, cfg.ViewOptions()...)

	logger.Debug("printing portfolio", "app", appName, "categories", catalog.Len())

	printer.Stdout.Printf("%s: Plane Photography Portfolio\n", appName)
	printer.PrintSummary(controller.Catalog(), opts.ByCount)
	printer.PrintGallery(controller)

	return nil
}
