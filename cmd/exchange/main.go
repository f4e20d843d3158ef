package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/cli"
	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/engine"
)

func main() {
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	// Operational logs go to stderr; the exchange dialogue owns stdout.
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Setup the matching engine and the interactive session.
	eng := engine.New()
	session := cli.NewSession(eng, os.Stdin, os.Stdout)

	if err := session.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session failed")
		os.Exit(1)
	}
}
