// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/mindgrep"
	"github.com/poiesic/mindgrep/config"
	"github.com/poiesic/mindgrep/core"
	"github.com/poiesic/mindgrep/mindmap"
	"github.com/poiesic/mindgrep/report"
)

// Exit codes follow grep convention: 0 for matches found, 1 for a clean run
// with no matches, 2 for an invalid spec or other fatal error.
const (
	exitNoMatches = 1
	exitFatal     = 2
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "mindgrep",
		Usage: "Search Freeplane mind-map files for keywords that may span a node and its children",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search mind maps for a keyword string",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "keyword",
						Aliases:  []string{"k"},
						Usage:    "Keyword string to search for; split into AND terms by --delimiter",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "file-folder",
						Aliases: []string{"f"},
						Usage:   "Map file or folder to search",
						EnvVars: []string{"MINDGREP_FILE_FOLDER"},
					},
					&cli.StringFlag{
						Name:    "extensions",
						Aliases: []string{"e"},
						Usage:   "Comma-separated map file suffixes",
						EnvVars: []string{"MINDGREP_EXTENSIONS"},
					},
					&cli.StringFlag{
						Name:    "delimiter",
						Aliases: []string{"d"},
						Usage:   "Literal delimiter splitting the keyword string into terms",
					},
					&cli.BoolFlag{
						Name:    "case-sensitive",
						Aliases: []string{"c"},
						Usage:   "Match terms case-sensitively",
					},
					&cli.BoolFlag{
						Name:    "regex",
						Aliases: []string{"r"},
						Usage:   "Interpret each term as a regular expression",
					},
					&cli.BoolFlag{
						Name:    "replace-newlines",
						Aliases: []string{"n"},
						Usage:   "Replace line breaks with a literal \\n before matching and display",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Number of files to search concurrently",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit one JSON record per match instead of colored text",
					},
					&cli.BoolFlag{
						Name:    "no-color",
						Usage:   "Disable terminal color",
						EnvVars: []string{"MINDGREP_NO_COLOR"},
					},
					&cli.StringFlag{
						Name:    "config",
						Usage:   "Path to a YAML defaults file",
						EnvVars: []string{"MINDGREP_CONFIG"},
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("mindgrep failed", "err", err)
		os.Exit(exitFatal)
	}
}

func searchCommand(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cli.Exit(err.Error(), exitFatal)
		}
		cfg = loaded
	}

	if c.Bool("no-color") || cfg.NoColor || c.Bool("json") {
		color.NoColor = true
	}

	spec, err := core.NewSearchSpec(c.String("keyword"),
		core.WithDelimiter(stringOr(c, "delimiter", cfg.Delimiter)),
		core.WithCaseSensitive(c.Bool("case-sensitive")),
		core.WithRegexMode(c.Bool("regex")),
		core.WithFlattenNewlines(c.Bool("replace-newlines")),
	)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	extensions := cfg.Extensions
	if c.IsSet("extensions") {
		extensions = mindmap.SplitExtensions(c.String("extensions"))
	}

	workers := cfg.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	g, err := mindgrep.New(spec,
		mindgrep.WithExtensions(extensions),
		mindgrep.WithWorkers(workers),
		mindgrep.WithLogger(slog.Default()),
	)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	res, err := g.Run(context.Background(), stringOr(c, "file-folder", cfg.FileFolder))
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	if c.Bool("json") {
		if err := report.WriteJSON(c.App.Writer, res.Matches); err != nil {
			return cli.Exit(fmt.Sprintf("write json: %v", err), exitFatal)
		}
	} else {
		renderer := report.NewRenderer(report.WithConnector(cfg.Connector))
		for line := range renderer.Lines(res.Matches) {
			fmt.Fprintln(c.App.Writer, line)
		}
	}

	slog.Info("search complete",
		"files", res.Summary.Files,
		"processed", res.Summary.Processed,
		"skipped", res.Summary.Skipped,
		"matched_files", res.Summary.MatchedFiles,
		"matches", res.Summary.Matches,
	)

	if res.Summary.Matches == 0 {
		return cli.Exit("", exitNoMatches)
	}
	return nil
}

// stringOr returns the flag value when set on the command line, the config
// fallback otherwise.
func stringOr(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
