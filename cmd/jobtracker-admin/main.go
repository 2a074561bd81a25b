package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/target/jobtracker-api/config"
	"github.com/target/jobtracker-api/internal/bootstrap"
	"github.com/target/jobtracker-api/internal/devseed"
	"github.com/target/jobtracker-api/internal/domain/model"
	"github.com/target/jobtracker-api/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const (
	defaultMigrationTimeout = 5 * time.Minute
	defaultListTimeout      = 30 * time.Second
	applicationDateLayout   = "2006-01-02"
)

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	bootstrap.ApplyLogLevel(&cfg)

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed sample applications",
			run:         runDBSeed,
		},
		"db-reset": {
			name:        "db-reset",
			description: "Delete every stored application and optionally reseed",
			run:         runDBReset,
		},
		"list-applications": {
			name:        "list-applications",
			description: "Print stored applications as a table",
			run:         runListApplications,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: jobtracker-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-24s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

type migrateOptions struct {
	Timeout time.Duration
}

type dbSeedOptions struct {
	Timeout     time.Duration
	AllowRemote bool
	Force       bool
}

type dbResetOptions struct {
	Timeout     time.Duration
	Yes         bool
	Seed        bool
	AllowRemote bool
}

type listOptions struct {
	Timeout time.Duration
	Status  string
	Company string
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withStore(cmdCtx, opts.Timeout, func(ctx context.Context, store *bootstrap.Store) error {
		if store.DB == nil {
			cmdCtx.Logger.InfoContext(ctx, "store has no schema; nothing to migrate", "driver", store.Driver)
			return nil
		}
		if migrateErr := bootstrap.RunMigrations(ctx, store, cmdCtx.Logger); migrateErr != nil {
			return migrateErr
		}
		cmdCtx.Logger.InfoContext(ctx, "migrations completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBSeedFlags(args)
	if err != nil {
		return err
	}

	if _, guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "insert sample applications into the configured database"); guardErr != nil {
		return guardErr
	}

	return withStore(cmdCtx, opts.Timeout, func(ctx context.Context, store *bootstrap.Store) error {
		cmdCtx.Logger.InfoContext(ctx, "ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, store, cmdCtx.Logger); migrateErr != nil {
			return migrateErr
		}

		n, seedErr := seed(ctx, cmdCtx, store, opts.Force)
		if seedErr != nil {
			return seedErr
		}
		cmdCtx.Logger.InfoContext(ctx, "database seeding completed successfully", "created", n)
		return nil
	})
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBResetFlags(args)
	if err != nil {
		return err
	}

	if _, guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "delete every stored application"); guardErr != nil {
		return guardErr
	}
	if !opts.Yes {
		if confirmErr := confirmReset(os.Stdin, os.Stderr, describeTarget(&cmdCtx.Config)); confirmErr != nil {
			return confirmErr
		}
	}

	return withStore(cmdCtx, opts.Timeout, func(ctx context.Context, store *bootstrap.Store) error {
		if migrateErr := bootstrap.RunMigrations(ctx, store, cmdCtx.Logger); migrateErr != nil {
			return migrateErr
		}

		svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Store: store, Logger: cmdCtx.Logger})
		removed, resetErr := deleteAll(ctx, svcs.Applications, store)
		if resetErr != nil {
			return resetErr
		}
		cmdCtx.Logger.InfoContext(ctx, "applications deleted", "count", removed)

		if opts.Seed {
			if _, seedErr := seed(ctx, cmdCtx, store, true); seedErr != nil {
				return seedErr
			}
		}
		return nil
	})
}

func runListApplications(cmdCtx *commandContext, args []string) error {
	opts, err := parseListFlags(args)
	if err != nil {
		return err
	}

	return withStore(cmdCtx, opts.Timeout, func(ctx context.Context, store *bootstrap.Store) error {
		svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Store: store, Logger: cmdCtx.Logger})
		apps, listErr := listApplications(ctx, svcs.Applications, store)
		if listErr != nil {
			return listErr
		}
		return printApplications(os.Stdout, filterApplications(apps, opts))
	})
}

func seed(ctx context.Context, cmdCtx *commandContext, store *bootstrap.Store, force bool) (int, error) {
	svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Store: store, Logger: cmdCtx.Logger})
	n, err := devseed.Run(ctx, devseed.Services{
		Applications: svcs.Applications,
		Sessions:     svcs.Sessions,
	}, cmdCtx.Logger, devseed.Options{Force: force})
	if err != nil {
		return n, fmt.Errorf("seed data: %w", err)
	}
	return n, nil
}

func listApplications(ctx context.Context, svc *service.ApplicationService, store *bootstrap.Store) ([]model.Application, error) {
	sess, err := store.Sessions.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	defer func() { _ = sess.Close() }()

	apps, err := svc.List(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func deleteAll(ctx context.Context, svc *service.ApplicationService, store *bootstrap.Store) (int, error) {
	apps, err := listApplications(ctx, svc, store)
	if err != nil {
		return 0, err
	}
	for i, app := range apps {
		if delErr := deleteOne(ctx, svc, store, app.ID); delErr != nil {
			return i, delErr
		}
	}
	return len(apps), nil
}

func deleteOne(ctx context.Context, svc *service.ApplicationService, store *bootstrap.Store, id int64) error {
	sess, err := store.Sessions.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	defer func() { _ = sess.Close() }()
	if err := svc.Delete(ctx, sess, id); err != nil {
		return fmt.Errorf("delete application %d: %w", id, err)
	}
	return nil
}

func filterApplications(apps []model.Application, opts listOptions) []model.Application {
	if opts.Status == "" && opts.Company == "" {
		return apps
	}
	out := make([]model.Application, 0, len(apps))
	for _, app := range apps {
		if opts.Status != "" && app.Status.String() != opts.Status {
			continue
		}
		if opts.Company != "" && !strings.EqualFold(app.CompanyName, opts.Company) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func printApplications(w io.Writer, apps []model.Application) error {
	if len(apps) == 0 {
		return writeln(w, "No applications found.")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writeln(tw, "ID\tJOB TITLE\tCOMPANY\tDATE\tSTATUS\tNOTES"); err != nil {
		return err
	}
	for _, app := range apps {
		if err := writef(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			app.ID,
			app.JobTitle,
			app.CompanyName,
			app.ApplicationDate.UTC().Format(applicationDateLayout),
			app.Status,
			truncate(app.Notes, 48),
		); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return writef(w, "\n%d application(s)\n", len(apps))
}

func truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := migrateOptions{}
	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for migrations to complete",
	)

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	if opts.Timeout <= 0 {
		return migrateOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseDBSeedFlags(args []string) (dbSeedOptions, error) {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbSeedOptions{}
	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for seeding to complete",
	)
	fs.BoolVar(
		&opts.AllowRemote,
		"allow-remote",
		false,
		"Permit running against database hosts that do not look local",
	)
	fs.BoolVar(
		&opts.Force,
		"force",
		false,
		"Seed even when applications already exist",
	)

	if err := fs.Parse(args); err != nil {
		return dbSeedOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbSeedOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseDBResetFlags(args []string) (dbResetOptions, error) {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbResetOptions{}
	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for reset operations to complete",
	)
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	fs.BoolVar(&opts.Seed, "seed", false, "Insert sample applications after the reset")
	fs.BoolVar(
		&opts.AllowRemote,
		"allow-remote",
		false,
		"Permit running against database hosts that do not look local",
	)

	if err := fs.Parse(args); err != nil {
		return dbResetOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbResetOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseListFlags(args []string) (listOptions, error) {
	fs := flag.NewFlagSet("list-applications", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := listOptions{}
	fs.DurationVar(&opts.Timeout, "timeout", defaultListTimeout, "Maximum duration to wait for the query")
	fs.StringVar(&opts.Status, "status", "", "Only show applications with this status (e.g. Applied)")
	fs.StringVar(&opts.Company, "company", "", "Only show applications for this company (case-insensitive)")

	if err := fs.Parse(args); err != nil {
		return listOptions{}, err
	}
	if opts.Timeout <= 0 {
		return listOptions{}, errors.New("--timeout must be greater than zero")
	}
	if opts.Status != "" {
		status, ok := model.ParseApplicationStatus(opts.Status)
		if !ok {
			return listOptions{}, fmt.Errorf("unknown status %q", opts.Status)
		}
		opts.Status = status.String()
	}
	opts.Company = strings.TrimSpace(opts.Company)
	return opts, nil
}

func withStore(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *bootstrap.Store) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	store, err := bootstrap.ConnectStore(ctx, bootstrap.DatabaseConfig{
		Config: &cmdCtx.Config,
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			cmdCtx.Logger.Warn("store close failed", "error", cerr)
		}
	}()

	return f(ctx, store)
}

// guardRemoteHost only applies to Postgres; SQLite and memory stores are always local.
func guardRemoteHost(cmdCtx *commandContext, allow bool, action string) (bool, error) {
	if cmdCtx.Config.Store.Driver != config.StoreDriverPostgres {
		return false, nil
	}
	host := cmdCtx.Config.Postgres.Host
	if !isLikelyRemoteHost(host) {
		return false, nil
	}
	if !allow {
		return true, fmt.Errorf(
			"refusing to run against potentially remote database host %q; re-run with --allow-remote if this is intentional",
			host,
		)
	}
	if err := requireRemoteHostConfirmation(os.Stdin, os.Stderr, action, host); err != nil {
		return true, err
	}
	return true, nil
}

func isLikelyRemoteHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return false
	}
	if h == "localhost" || h == "127.0.0.1" || h == "::1" {
		return false
	}
	if strings.HasSuffix(h, ".local") {
		return false
	}
	if ip := net.ParseIP(h); ip != nil {
		return !ip.IsLoopback()
	}
	return true
}

func requireRemoteHostConfirmation(in io.Reader, out io.Writer, action, host string) error {
	if err := writef(
		out,
		"\nWARNING: database host %q does not look like a local address.\n"+
			"This operation will %s.\n",
		host,
		action,
	); err != nil {
		return fmt.Errorf("print remote host warning: %w", err)
	}
	if err := writef(out, "Type %q to continue or press enter to abort: ", host); err != nil {
		return fmt.Errorf("print remote host prompt: %w", err)
	}
	resp, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if strings.TrimSpace(resp) != host {
		if writeErr := writeln(out, "\nRemote safeguard check failed; aborting."); writeErr != nil {
			return fmt.Errorf("print remote safeguard failure: %w", writeErr)
		}
		return errors.New("aborted by user")
	}
	return nil
}

func describeTarget(cfg *config.AppConfig) string {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return fmt.Sprintf("database %q on %s:%d", cfg.Postgres.Name, cfg.Postgres.Host, cfg.Postgres.Port)
	case config.StoreDriverSQLite:
		return fmt.Sprintf("sqlite file %s", cfg.SQLite.Path)
	default:
		return fmt.Sprintf("%s store", cfg.Store.Driver)
	}
}

func confirmReset(in io.Reader, out io.Writer, target string) error {
	if err := writef(out, "This will delete every application in %s.\nType \"yes\" to continue: ", target); err != nil {
		return fmt.Errorf("print reset prompt: %w", err)
	}
	resp, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(resp), "yes") {
		return errors.New("aborted by user")
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}
