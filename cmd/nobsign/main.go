// Command nobsign signs and verifies values from the command line.
//
//	NOBSIGN_SECRET=... nobsign sign 101
//	NOBSIGN_SECRET=... nobsign unsign 101.<signature>
//	NOBSIGN_SECRET=... nobsign sign -t 101
//	NOBSIGN_SECRET=... nobsign unsign -t -max-age 3600 101.<timestamp>.<signature>
//
// Configuration is read from the environment and from a .env file in the
// working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	nobsign "github.com/iromli/go-nobsign"
)

var errUsage = errors.New("usage: nobsign sign|unsign [-t] [-max-age seconds] value")

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := nobsign.LoadConfig()
	if err != nil {
		log.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		log.Error("nobsign failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg nobsign.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	timed := fs.Bool("t", false, "embed or check a timestamp")
	maxAge := fs.Uint("max-age", uint(cfg.MaxAge), "maximum token age in seconds")
	if err := fs.Parse(args[1:]); err != nil {
		return errors.Join(errUsage, err)
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	input := fs.Arg(0)

	var result string
	switch {
	case args[0] == "sign" && !*timed:
		s, err := nobsign.NewSignerFromConfig(cfg)
		if err != nil {
			return err
		}
		result = s.Sign(input)
	case args[0] == "sign":
		s, err := nobsign.NewTimestampSignerFromConfig(cfg)
		if err != nil {
			return err
		}
		result = s.Sign(input)
	case args[0] == "unsign" && !*timed:
		s, err := nobsign.NewSignerFromConfig(cfg)
		if err != nil {
			return err
		}
		if result, err = s.Unsign(input); err != nil {
			return err
		}
	case args[0] == "unsign":
		s, err := nobsign.NewTimestampSignerFromConfig(cfg)
		if err != nil {
			return err
		}
		if result, err = s.Unsign(input, uint32(*maxAge)); err != nil {
			return err
		}
	default:
		return errUsage
	}

	_, err := fmt.Fprintln(out, result)
	return err
}
