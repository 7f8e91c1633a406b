package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authboot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the auth API
//	-d string   path of the SQLite store
//	-p string   path of the HTML page
//	-s string   CSS selector of the main heading
//	-l string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the auth API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local SQLite store")
	fs.StringVar(&cfg.PagePath, "p", cfg.PagePath, "path of the HTML page")
	fs.StringVar(&cfg.HeadingSelector, "s", cfg.HeadingSelector, "CSS selector of the main heading")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
