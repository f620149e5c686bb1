package main

import (
	"io"
	"os"

	"github.com/tendermint/tendermint/libs/log"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// logOutput is where diagnostic logs are written.
var logOutput io.Writer = os.Stderr

// newLogger returns a logger writing to logOutput. Debug messages are
// included only when verbose.
func newLogger(verbose bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(logOutput))
	if verbose {
		return log.NewFilter(logger, log.AllowDebug())
	}
	return log.NewFilter(logger, log.AllowInfo())
}

func defaultKeyPath() string {
	return env("ESCROWCLI_PRIV_KEY", os.Getenv("HOME")+"/.escrow.priv.key")
}

func defaultConfigPath() string {
	return env("ESCROWCLI_CONFIG", "escrow.json")
}
