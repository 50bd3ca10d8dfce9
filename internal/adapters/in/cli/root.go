// Package cli is the command line surface of routebook. Without a subcommand
// it starts the interactive console; the subcommands run one query against a
// manifest and exit.
package cli

import (
	"context"
	"log/slog"

	"routebook/internal/adapters/in/console"
	"routebook/internal/core/application/usecases/commands"
	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/core/ports"
	"routebook/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Services are the use cases behind the commands, built once per invocation.
type Services struct {
	console.Handlers

	ListOrders queries.ListOrdersQueryHandler
	Routes     ports.RouteSource
}

// Factory builds Services around the invocation's logger.
type Factory func(logger *slog.Logger) Services

// Options are defaults taken from the environment. Flags override them.
type Options struct {
	LogLevel string
	LogFile  string
	NoClear  bool
}

type app struct {
	factory Factory

	debug    bool
	noClear  bool
	logLevel string
	logFile  string
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context, opts Options, factory Factory) error {
	return NewRootCmd(opts, factory).ExecuteContext(ctx)
}

func NewRootCmd(opts Options, factory Factory) *cobra.Command {
	a := &app{factory: factory}

	cmd := &cobra.Command{
		Use:          "routebook",
		Short:        "Load delivery manifests, search orders and print routes",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         a.runConsole,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&a.noClear, "no-clear", opts.NoClear, "do not clear the screen between console steps")
	flags.StringVar(&a.logLevel, "log-level", opts.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&a.logFile, "log-file", opts.LogFile, "write logs to this file instead of stderr")

	cmd.AddCommand(a.ordersCmd(), a.searchCmd(), a.routeCmd())
	return cmd
}

// start sets up logging and the services. done must be called when the
// command finishes.
func (a *app) start(cmd *cobra.Command) (Services, *slog.Logger, func(), error) {
	l, cleanup, err := logger.Setup(logger.Config{
		Level: a.logLevel,
		File:  a.logFile,
		Debug: a.debug,
	}, cmd.ErrOrStderr())
	if err != nil {
		return Services{}, nil, nil, err
	}

	l.DebugContext(cmd.Context(), "Command started", "command", cmd.Name())
	return a.factory(l), l, func() { _ = cleanup() }, nil
}

func (a *app) runConsole(cmd *cobra.Command, _ []string) error {
	svc, l, done, err := a.start(cmd)
	if err != nil {
		return err
	}
	defer done()

	opts := []console.Option{console.WithLogger(l)}
	if a.noClear {
		opts = append(opts, console.WithoutScreenClearing())
	}

	session := console.NewSession(svc.Handlers, cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	return session.Run(cmd.Context())
}

// loadDelivery reads the manifest at path and makes it the active delivery.
func loadDelivery(ctx context.Context, svc *Services, path string) error {
	query, err := queries.NewReadManifestQuery(path)
	if err != nil {
		return err
	}

	pending, err := svc.ReadManifest.Handle(ctx, query)
	if err != nil {
		return err
	}

	confirm, err := commands.NewConfirmDeliveryCommand(pending.Delivery)
	if err != nil {
		return err
	}

	return svc.ConfirmDelivery.Handle(ctx, confirm)
}
