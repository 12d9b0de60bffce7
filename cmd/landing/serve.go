package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/httpserver"
	"finitefield.org/landing-web/internal/session"
)

const defaultShutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured sites over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()
			if addr != "" {
				rt.cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), rt)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func serve(parent context.Context, rt *app) error {
	if parent == nil {
		parent = context.Background()
	}
	hash, block, generated := rt.cfg.SessionKeys()
	if generated {
		rt.logger.Warn("session keys not configured; sessions will not survive a restart")
	}
	sessions, err := session.NewManager(session.Config{
		CookieName:   rt.cfg.Session.CookieName,
		HashKey:      hash,
		BlockKey:     block,
		CookieSecure: rt.cfg.Session.Secure,
		IdleTimeout:  rt.cfg.Session.IdleTimeout,
		Lifetime:     rt.cfg.Session.Lifetime,
	})
	if err != nil {
		return fmt.Errorf("creating session manager: %w", err)
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:      rt.cfg.Server.Addr,
		Sites:        rt.store,
		Catalog:      rt.catalog,
		Sessions:     sessions,
		Logger:       rt.logger,
		DevMode:      rt.cfg.Server.DevMode,
		ReadTimeout:  rt.cfg.Server.ReadTimeout,
		WriteTimeout: rt.cfg.Server.WriteTimeout,
		IdleTimeout:  rt.cfg.Server.IdleTimeout,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	rt.logger.Info("landing server listening",
		zap.String("addr", rt.cfg.Server.Addr),
		zap.Strings("sites", rt.store.IDs()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := rt.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rt.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
