// Package tuiapp provides the TUI app which presents the portfolio and can be interacted with.
// Layout idea:
// +-------------------------------------------------+
// |          Plane Photography Portfolio   [d] dark |
// | ( Select Page v )                               |
// |  | 1 Home |                                     |
// |  | 2 Gallery |                                  |
// |  | 3 Gallery List |                             |
// |                                                 |
// | Home:    welcome text                           |
// | Gallery: / Search planes...                     |
// |          Commercial  Military  Private          |
// |          | # | Caption     | Source          |  |
// | List:    | Category        | Photos |           |
// |                                                 |
// | m select page · d dark mode · q quit            |
// +-------------------------------------------------+
// .
package tuiapp

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/micutio/planefolio/internal"
)

// Run starts the portfolio in the alternate screen and blocks until the user quits.
func Run(appName string, cfg *internal.AppConfig, catalog *internal.Catalog) (runErr error) {
	var debugLog io.Writer
	if cfg.DebugLog != "" {
		logFile, logErr := tea.LogToFile(cfg.DebugLog, appName)
		if logErr != nil {
			return fmt.Errorf("tuiapp.Run: cannot open debug log: %w", logErr)
		}
		defer func() {
			closeErr := logFile.Close()
			if closeErr != nil && runErr == nil {
				runErr = fmt.Errorf("tuiapp.Run: error while closing debug log: %w", closeErr)
			}
		}()
		debugLog = logFile
	}

	logger := internal.TUILogParams(debugLog).ErrorLogger()
	controller := internal.NewViewController(catalog, cfg.ViewOptions()...)
	logger.Info("starting",
		"categories", catalog.Len(),
		"view", controller.ActiveView().String(),
		"dark", controller.DarkMode())

	m := newModel(controller, cfg.PhotoRoot, logger)
	// Create a new Bubble Tea program with the model and enable alternate screen
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Run the program and handle any errors
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tuiapp.Run: error running program: %w", err)
	}

	return nil
}
