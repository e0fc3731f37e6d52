// Package main is the interactive article filter.
//
// Usage: articles [--min-views N] [--keyword TEXT] [--config FILE]
//
// Missing flags are prompted for on stdin. Exit codes: 0 success,
// 1 invalid input or configuration, 2 article store unavailable.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"article-filter/internal/config"
	"article-filter/internal/domain/entity"
	"article-filter/internal/infra/adapter/persistence"
	infradb "article-filter/internal/infra/db"
	"article-filter/internal/observability/logging"
	artUC "article-filter/internal/usecase/article"
)

const (
	exitOK           = 0
	exitInvalidInput = 1
	exitStoreFailure = 2

	msgInvalidViews = "Error: enter a valid, non-negative number of views."
	msgStoreFailure = "Error: could not load articles from the database."
	msgBadConfig    = "Error: could not load the configuration."
	msgNoResults    = "No articles match the given criteria."
	msgResults      = "Articles found:"
)

// filterer is the part of artUC.Service the CLI uses.
type filterer interface {
	Filter(ctx context.Context, minViews int, keyword string) (artUC.Result, error)
}

// opener builds the filter service from the config file at path (empty for
// env only); the returned func releases it.
type opener func(ctx context.Context, path string) (filterer, func(), error)

// errConfig marks opener failures caused by the configuration rather than
// the database.
var errConfig = errors.New("invalid configuration")

// exitError carries a process exit code out of a cobra RunE.
type exitError struct{ code int }

func (e exitError) Error() string { return "exit " + strconv.Itoa(e.code) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, openService(os.Stderr))
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, open opener) int {
	root := newRootCmd(open)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	return exitInvalidInput
}

func newRootCmd(open opener) *cobra.Command {
	var (
		rawViews   string
		keyword    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "articles",
		Short:         "List articles by minimum views and keyword",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())

			if !cmd.Flags().Changed("min-views") {
				_, _ = fmt.Fprint(out, "Minimum views: ")
				rawViews = readLine(in)
			}
			minViews, err := parseMinViews(rawViews)
			if err != nil {
				_, _ = fmt.Fprintln(out, msgInvalidViews)
				return exitError{exitInvalidInput}
			}

			if !cmd.Flags().Changed("keyword") {
				_, _ = fmt.Fprint(out, "Keyword (leave empty for all): ")
				keyword = readLine(in)
			}

			svc, closeFn, err := open(ctx, configPath)
			if errors.Is(err, errConfig) {
				_, _ = fmt.Fprintln(out, msgBadConfig)
				return exitError{exitInvalidInput}
			}
			if err != nil {
				_, _ = fmt.Fprintln(out, msgStoreFailure)
				return exitError{exitStoreFailure}
			}
			defer closeFn()

			res, err := svc.Filter(ctx, minViews, keyword)
			if err != nil {
				slog.Default().Error("failed to load articles from store", slog.Any("error", err))
				_, _ = fmt.Fprintln(out, msgStoreFailure)
				return exitError{exitStoreFailure}
			}

			render(out, res.Articles)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawViews, "min-views", "", "minimum number of views (prompted when omitted)")
	cmd.Flags().StringVar(&keyword, "keyword", "", "keyword to match in titles and tags (prompted when omitted)")
	cmd.Flags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "YAML configuration file")
	return cmd
}

// readLine returns one line without its terminator; EOF yields what was read.
func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func parseMinViews(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if err := entity.ValidateViews(n); err != nil {
		return 0, err
	}
	return n, nil
}

func render(w io.Writer, articles []entity.Article) {
	if len(articles) == 0 {
		_, _ = fmt.Fprintln(w, msgNoResults)
		return
	}
	_, _ = fmt.Fprintln(w, msgResults)
	for _, a := range articles {
		_, _ = fmt.Fprintf(w, "- %s (%d views)\n", a.Title, a.Views)
	}
}

// openService loads the configuration and connects to the article store.
// Diagnostics go to logOut so stdout carries only the dialogue.
func openService(logOut io.Writer) opener {
	return func(ctx context.Context, path string) (filterer, func(), error) {
		cfg, err := config.LoadFrom(path)
		if err != nil {
			slog.New(slog.NewTextHandler(logOut, nil)).Error("failed to load configuration", slog.Any("error", err))
			return nil, nil, fmt.Errorf("%w: %w", errConfig, err)
		}

		logger := logging.NewLogger(logging.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: logOut,
		})
		slog.SetDefault(logger)

		db, err := infradb.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}

		if cfg.Database.AutoMigrate {
			if err := infradb.MigrateUp(ctx, db, cfg.Database.Driver); err != nil {
				logger.Error("failed to migrate database", slog.Any("error", err))
				closeDB()
				return nil, nil, err
			}
		}

		store, err := persistence.NewStore(db, *cfg, logger)
		if err != nil {
			closeDB()
			return nil, nil, err
		}

		return &artUC.Service{Repo: store.Repo, Logger: logger}, closeDB, nil
	}
}
