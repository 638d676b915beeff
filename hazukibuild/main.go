// Command hazukibuild is the offline artifact builder: it reads the JMdict,
// JMnedict, Kanjidic2, and radkfile source streams and writes a single
// database.bin a query-time Index can open.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "hazukibuild",
		Usage: "build a hazuki lookup artifact from JMdict/JMnedict/Kanjidic2/radkfile sources",
		Commands: []*cli.Command{
			buildCommand(),
		},
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("build failed")
		os.Exit(1)
	}
}
