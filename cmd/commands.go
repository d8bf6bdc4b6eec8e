package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by all commands.
type rootOptions struct {
	configPath string
	logLevel   string
}

// setup loads the config and builds the logger and pool runtime for a command.
func (o *rootOptions) setup(cmd *cobra.Command, reg prometheus.Registerer) (*poolRuntime, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		return nil, err
	}
	return buildRuntime(cfg, logger, reg)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "channelpool",
		Short:         "Resolve services to ready gRPC channels through the channel pool",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the YAML config (default $"+envConfigPath+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	root.AddCommand(resolveCmd(opts), checkCmd(opts), watchCmd(opts))
	return root
}

func resolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <service>...",
		Short: "Resolve the named services and print the selected endpoint and channel state",
		Example: `  channelpool resolve order
  channelpool resolve math order --config channelpool.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd, nil)
			if err != nil {
				return err
			}
			defer rt.shutdown()
			return runResolve(cmd.OutOrStdout(), rt, args)
		},
	}
}

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve every configured service once; fails if any service cannot be resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.setup(cmd, nil)
			if err != nil {
				return err
			}
			defer rt.shutdown()
			return runResolve(cmd.OutOrStdout(), rt, rt.configs.Names())
		},
	}
}

func runResolve(w io.Writer, rt *poolRuntime, names []string) error {
	rows := resolveServices(rt.pool, names)
	renderResolutions(w, rows, rt.pool.Stats())
	if n := failedCount(rows); n > 0 {
		return fmt.Errorf("%d of %d services failed to resolve", n, len(rows))
	}
	return nil
}

func watchCmd(opts *rootOptions) *cobra.Command {
	var (
		interval    time.Duration
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve every configured service on an interval and expose pool metrics",
		Example: `  channelpool watch --interval 5s
  channelpool watch --metrics-addr :9464`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			rt, err := opts.setup(cmd, reg)
			if err != nil {
				return err
			}
			defer rt.shutdown()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), rt, reg, interval, metricsAddr)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 10*time.Second, "resolution interval")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "listen address for /metrics (disabled when empty)")
	return cmd
}

// runWatch resolves every configured service immediately and then on every tick until ctx is
// done. With a metricsAddr, /metrics serves reg for the duration of the watch.
func runWatch(ctx context.Context, w io.Writer, rt *poolRuntime, reg *prometheus.Registry, interval time.Duration, metricsAddr string) error {
	if metricsAddr != "" {
		srv, err := serveMetrics(metricsAddr, reg, rt.logger)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	names := rt.configs.Names()
	for {
		rows := resolveServices(rt.pool, names)
		fmt.Fprintf(w, "%s\n", time.Now().UTC().Format(time.RFC3339))
		renderResolutions(w, rows, rt.pool.Stats())
		select {
		case <-ctx.Done():
			level.Info(rt.logger).Log("msg", "watch stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger log.Logger) (*http.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	level.Info(logger).Log("msg", "serving metrics", "addr", lis.Addr().String())
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "serve metrics", "err", err)
		}
	}()
	return srv, nil
}
