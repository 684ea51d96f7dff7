package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the backend serving /passphrase, /emojiphrase and /ws",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, os.Stderr)

	set, err := loadDictionaries(cfg.Dictionary)
	if err != nil {
		return err
	}

	s := newServer(newLocalSource(set), cfg.Server.AllowedOrigin, logger)
	httpServer := fasthttp.Server{
		Name:         "apassphrase",
		Handler:      s.handleRequest,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	addr := cfg.Server.Addr()
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe(addr)
	}()
	logger.Info("server listening", "addr", addr, "words", len(set.Words), "emojis", len(set.Emojis))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("listening on %s: %w", addr, err)
	case <-sigCh:
	}

	logger.Info("shutting down")
	return httpServer.Shutdown()
}
