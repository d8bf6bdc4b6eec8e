// Package main is the channelpool operator CLI. It loads the pool configuration (YAML + env),
// builds a channel pool (discoverer per discovery_backend, balancer per load_balancer, gRPC
// channel factory) and resolves services through it: "resolve" for named services, "check" for
// every configured service, "watch" to re-resolve on an interval while serving /metrics.
// Every command shuts the pool down before returning.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the logfmt logger used by all commands, filtered at lvl (debug|info|warn|error).
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	var allow level.Option
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		allow = level.AllowDebug()
	case "", "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("log level must be debug|info|warn|error, got %q", lvl)
	}
	return level.NewFilter(logger, allow), nil
}
