package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/horde-arcade/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
	flagIdle    time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the arcade over SSH",
	Long: `Host the arcade over SSH. Every connection gets its own menu and
games; all players share one scores database.

A host key is generated at ~/.arcade/host_key unless --host-key points
at an existing one.

Examples:
  arcade serve
  arcade serve --ssh :2222 --idle 10m
  arcade serve --host-key ./host_key --db ./scores.db

Players connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file")
	serveCmd.Flags().DurationVar(&flagIdle, "idle", defaults.IdleTimeout, "Disconnect sessions idle for this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// A server logs its sessions unless told otherwise.
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(log.InfoLevel)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdle,
		TickRate:    flagFPS,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving the arcade on %s, Ctrl+C to stop\n", server.Addr())
	return server.ListenAndServe(ctx)
}
