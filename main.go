package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:           "serveit",
		Short:         "Serve a directory over HTTP (with directory listings)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := cfg.mergeFile(configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&cfg.Interface, "interface", "i", cfg.Interface, "Interface to bind")
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on")
	cmd.Flags().StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "Directory to serve (default: current directory)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Optional TOML config file")

	if err := cmd.Execute(); err != nil {
		slog.Error("Fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config) error {
	root, err := canonicalRoot(cfg.Dir)
	if err != nil {
		return err
	}

	addr := cfg.addr()
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return fmt.Errorf("invalid interface/port %q: %w", addr, err)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", addr, err)
	}

	color.Green("Serving: %s", root)
	color.Cyan("Listening on: http://%s", ln.Addr())

	srv := &http.Server{
		Handler:      service(root, osFS{}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// canonicalRoot resolves dir to an absolute, symlink-free directory path.
// An empty dir means the current working directory.
func canonicalRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", dir, err)
	}
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("cannot canonicalize dir %q: %w", dir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", root)
	}
	return root, nil
}
