package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/geoattend/controllers"
	"github.com/blogem/geoattend/database"
	"github.com/blogem/geoattend/middleware"
	"github.com/blogem/geoattend/notifier"
	"github.com/blogem/geoattend/repositories"
	"github.com/blogem/geoattend/services"
)

const shutdownTimeout = 15 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}
}

func serveRun(ctx context.Context) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}

	var notify notifier.Notifier = notifier.NewNoop(a.log)
	if a.cfg.NotifyURL != "" {
		notify = notifier.NewHTTPNotifier(a.cfg.NotifyURL, a.cfg.NotifyToken, a.cfg.NotifyTimeout, a.log)
	}

	repos := repositories.NewRepositories(a.db)
	srvs := services.NewServices(repos, services.Config{
		MaxImageBytes:     a.cfg.MaxImageBytes,
		LocationFreshness: a.cfg.LocationFreshness,
		Window:            a.cfg.Window,
		Location:          loc,
		SummaryRecipient:  a.cfg.NotifyRecipient,
	}, notify, a.log)

	ctrl := controllers.NewControllers(srvs, controllers.Options{
		Location:      loc,
		MaxImageBytes: a.cfg.MaxImageBytes,
	}, a.log)

	if a.cfg.AdminSecretHash == "" {
		a.log.Warn("ADMIN_SECRET_HASH is not set, administrative routes are disabled")
	}

	server := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           setupRouter(ctrl, a.cfg.AdminSecretHash, a.log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("database", a.cfg.DatabasePath),
			zap.String("window", a.cfg.Window.String()),
			zap.String("timezone", loc.String()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.Close()

			a.log.Info("database is up to date", zap.String("database", a.cfg.DatabasePath))
			return nil
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default zones when none exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.Close()

			zones := services.NewZoneService(repositories.NewZoneRepository(a.db), a.log)
			created, err := zones.SeedDefaults(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %d zones\n", created)
			return nil
		},
	}
}

func backupCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent copy of the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.Close()

			if output == "" {
				output = database.DefaultBackupPath(a.cfg.DatabasePath, time.Now())
			}
			if err := database.Backup(cmd.Context(), a.db, output); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "backup file path (defaults to a timestamped file next to the database)")
	return cmd
}

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print table counts and the latest attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.Close()

			info, err := database.GetInfo(cmd.Context(), a.db, a.cfg.DatabasePath)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

func hashSecretCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-secret [secret]",
		Short: "Print the bcrypt hash to use as ADMIN_SECRET_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret string
			if len(args) == 1 {
				secret = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read secret: %w", err)
				}
				secret = strings.TrimRight(line, "\r\n")
			}

			if secret == "" {
				return errors.New("secret must not be empty")
			}

			hash, err := middleware.HashSecret(secret)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
