package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/hazuki-dict/hazuki/index"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "parse one or more JMdict/JMnedict/Kanjidic2/radkfile sources into database.bin",
		ArgsUsage: "SOURCE_PATH...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: ".", Usage: "directory to write database.bin into"},
			&cli.BoolFlag{Name: "pretty-log", Usage: "use a human-readable console log writer instead of JSON"},
			&cli.StringFlag{Name: "name", Value: "hazuki", Usage: "display name stored in the artifact header"},
		},
		Action: runBuild,
	}
}

func runBuild(c *cli.Context) error {
	logger := newLogger(c.Bool("pretty-log"))

	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("build: at least one SOURCE_PATH is required")
	}

	input := index.BuildInput{Name: c.String("name"), Logger: logger}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		parsed, err := readSource(f, logger)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if closeErr != nil {
			return fmt.Errorf("close %s: %w", path, closeErr)
		}
		merge(&input, parsed)
		logger.Info().Str("path", path).Msg("parsed source")
	}

	data := index.Build(input)
	logger.Info().Str("size", humanize.Bytes(uint64(len(data)))).Msg("artifact serialized")

	return writeAtomic(c.String("out"), data, logger)
}

// writeAtomic writes data to a uuid-suffixed temp file in dir and renames it
// to database.bin, so a crash mid-write never leaves a partial artifact in
// place of a good one (spec §5: "either succeeds and writes an artifact
// atomically... or leaves no output").
func writeAtomic(dir string, data []byte, logger zerolog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	tempPath := filepath.Join(dir, fmt.Sprintf(".database-%s.bin.tmp", uuid.New().String()))
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp artifact: %w", err)
	}

	finalPath := filepath.Join(dir, "database.bin")
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename temp artifact into place: %w", err)
	}
	logger.Info().Str("path", finalPath).Msg("wrote artifact")
	return nil
}

func newLogger(pretty bool) zerolog.Logger {
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
