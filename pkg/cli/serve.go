package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shamikhz/UUID-Generator/pkg/cliconfig"
	"github.com/shamikhz/UUID-Generator/pkg/session"
	"github.com/shamikhz/UUID-Generator/pkg/web"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	serveHost       string
	servePort       int
	serveSessionTTL time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web panel",
	Long: `Start the web panel, JSON API, WebSocket stream, health and metrics
endpoints. Runs until interrupted.`,
	Example: `  # Listen on all interfaces
  uuidgen serve --host 0.0.0.0 --port 8080

  # Expire idle browser sessions after five minutes
  uuidgen serve --session-ttl 5m`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", cliconfig.DefaultHost, "Address to listen on")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", cliconfig.DefaultPort, "Port to listen on")
	serveCmd.Flags().DurationVar(&serveSessionTTL, "session-ttl", time.Duration(cliconfig.DefaultSessionTTL)*time.Second, "Idle time before a browser session expires")
}

// applyServeFlags overrides the loaded configuration with explicit flags.
func applyServeFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = serveHost
		cfg.Sources["host"] = cliconfig.SourceFlag
	}
	if flags.Changed("port") {
		cfg.Port = servePort
		cfg.Sources["port"] = cliconfig.SourceFlag
	}
	if flags.Changed("session-ttl") {
		cfg.SessionTTL = int(serveSessionTTL / time.Second)
		cfg.Sources["sessionTTL"] = cliconfig.SourceFlag
	}
	return cfg.Validate()
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := applyServeFlags(cmd); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger()
	srv, err := web.NewServer(cfg.Addr(),
		web.WithLogger(log),
		web.WithTimeouts(cfg.ReadTimeoutDuration(), cfg.WriteTimeoutDuration()),
		web.WithSessionOptions(
			session.WithTTL(cfg.SessionTTLDuration()),
			session.WithMaxSessions(cfg.MaxSessions),
		),
		web.WithVersion(Version),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return srv.Sessions().Run(ctx) })

	log.Info("uuidgen started", "addr", cfg.Addr(), "version", Version)
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("uuidgen stopped")
	return nil
}
