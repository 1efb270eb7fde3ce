// Package main provides the plane photography portfolio
package main

import (
	"log/slog"
	"os"

	"github.com/micutio/planefolio/internal"
	"github.com/micutio/planefolio/printapp"
	"github.com/micutio/planefolio/tuiapp"
	"github.com/spf13/pflag"
)

const (
	// thisAppName is the name of this application as shown in print mode and the debug log.
	thisAppName = "planefolio"
)

type cliArgs struct {
	isPrint    bool
	isByCount  bool
	isLight    bool
	filter     string
	view       string
	catalog    string
	photoRoot  string
	configPath string
	envPath    string
	debugLog   string
}

func main() {
	var args cliArgs

	setupCommandLineFlags(&args)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	logger := slog.Default()

	cfg, cfgErr := loadConfig(&args)
	if cfgErr != nil {
		logger.Error("unable to load configuration, exiting", slog.Any("config error", cfgErr))
		os.Exit(1)
	}

	catalog, catalogErr := cfg.Catalog()
	if catalogErr != nil {
		logger.Error("unable to load catalog, exiting", slog.Any("catalog error", catalogErr))
		os.Exit(1)
	}

	var runErr error
	if args.isPrint {
		runErr = printapp.Run(
			thisAppName,
			internal.PrintLogParams(),
			cfg,
			catalog,
			printapp.Options{ByCount: args.isByCount})
	} else {
		runErr = tuiapp.Run(thisAppName, cfg, catalog)
	}

	if runErr != nil {
		logger.Error("exiting with error", slog.Any("error", runErr))
		os.Exit(1)
	}
}

// loadConfig layers the configuration: defaults, config file, .env and environment, flags.
func loadConfig(args *cliArgs) (*internal.AppConfig, error) {
	if err := internal.LoadDotEnv(args.envPath); err != nil {
		return nil, err
	}

	cfg, err := internal.LoadConfig(args.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	flags := pflag.CommandLine
	if flags.Changed("light") {
		cfg.DarkMode = !args.isLight
	}
	if flags.Changed("filter") {
		cfg.Filter = args.filter
	}
	if flags.Changed("view") {
		view, viewErr := internal.ParseView(args.view)
		if viewErr != nil {
			return nil, viewErr
		}
		cfg.InitialView = view
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = args.catalog
	}
	if flags.Changed("photos") {
		cfg.PhotoRoot = args.photoRoot
	}
	if flags.Changed("debug-log") {
		cfg.DebugLog = args.debugLog
	}

	return cfg, nil
}

func setupCommandLineFlags(args *cliArgs) {
	// Whether to launch the print or TUI app.
	pflag.BoolVarP(
		&args.isPrint,
		"print",
		"P",
		false,
		"print the portfolio to stdout without TUI")
	pflag.Lookup("print").NoOptDefVal = "true"

	pflag.BoolVar(
		&args.isByCount,
		"by-count",
		false,
		"in print mode, list the galleries from the smallest to the largest")

	pflag.BoolVarP(&args.isLight, "light", "L", false, "start with dark mode switched off")
	pflag.StringVarP(&args.filter, "filter", "f", "", "initial search text of the gallery")
	pflag.StringVarP(&args.view, "view", "v", "home", "initial page: home, gallery or list")
	pflag.StringVarP(&args.catalog, "catalog", "c", "", "YAML catalog to use instead of the built-in one")
	pflag.StringVarP(&args.photoRoot, "photos", "p", internal.DefaultPhotoRoot, "directory the photo paths are resolved against")
	pflag.StringVar(&args.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/planefolio/config.yaml)")
	pflag.StringVar(&args.envPath, "env", ".env", "dotenv file with PLANEFOLIO_* variables")
	pflag.StringVar(&args.debugLog, "debug-log", "", "write diagnostics of the TUI to this file")
}
