package main

import (
	"errors"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	os.Exit(run(os.Args[1:], os.Stdout, logger))
}

// run parses args and executes the selected command, returning the exit code.
func run(args []string, stdout io.Writer, logger zerolog.Logger) int {
	opts := newOptions(stdout, logger)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "pubsite"
	parser.ShortDescription = "Inspect and validate static site configuration profiles"

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			_, _ = io.WriteString(stdout, ferr.Message+"\n")
			return 0
		}
		logger.Error().Err(err).Msg("pubsite failed")
		return 1
	}
	return 0
}
