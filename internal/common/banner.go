package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config, logger *Logger) {
	version := GetVersion()
	build := GetBuild()

	if config.IsProduction() {
		// No decorative output in production; the structured log line
		// below still records the startup.
		logger.Info().
			Str("version", GetFullVersion()).
			Str("environment", config.Environment).
			Str("database", config.Storage.Path).
			Msg("Application started")
		return
	}

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 62
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		`    _    ____  ____  _____ _____     ____  _     ___ _____`,
		`   / \  / ___|/ ___|| ____|_   _|   |  _ \| |   / _ \_   _|`,
		`  / _ \ \___ \\___ \|  _|   | |_____| |_) | |  | | | || |`,
		` / ___ \ ___) |___) | |___  | |_____|  __/| |__| |_| || |`,
		`/_/   \_\____/|____/|_____| |_|     |_|   |_____\___/ |_|`,
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s  Personal Portfolio Valuation%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	kvPad := 16
	kvLines := [][2]string{
		{"Version", version},
		{"Build", build},
		{"Commit", GetGitCommit()},
		{"Environment", config.Environment},
		{"Database", config.Storage.Path},
		{"Currencies", config.BaseCurrency + " -> " + config.TargetCurrency},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	logger.Info().
		Str("version", GetFullVersion()).
		Str("environment", config.Environment).
		Str("database", config.Storage.Path).
		Msg("Application started")
}
