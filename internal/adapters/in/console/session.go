// Package console runs the interactive delivery workflow as a state machine:
// select a manifest, confirm it, then search it or print routes until the
// user terminates.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"routebook/internal/core/application/usecases/commands"
	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/pkg/logger"

	"github.com/labstack/gommon/color"
)

// Handlers are the use cases the console drives.
type Handlers struct {
	ReadManifest    queries.ReadManifestQueryHandler
	ConfirmDelivery commands.ConfirmDeliveryCommandHandler
	GetOrderByID    queries.GetOrderByIDQueryHandler
	SearchByAddress queries.SearchOrderByAddressQueryHandler
	RouteReport     queries.GetRouteReportQueryHandler
}

type transition func(ctx context.Context) State

// Session is one run of the console. It is single-use and not safe for
// concurrent use.
type Session struct {
	handlers Handlers
	scanner  *bufio.Scanner
	out      *errWriter
	colors   *color.Color
	logger   *slog.Logger
	clear    bool

	state       State
	transitions map[State]transition

	// pending is the parsed manifest awaiting confirmation.
	pending   *delivery.Delivery
	routeName string
	readErr   error
}

type Option func(*Session)

// WithoutScreenClearing disables the blank lines printed between screens.
func WithoutScreenClearing() Option {
	return func(s *Session) { s.clear = false }
}

// WithLogger sets the session logger. The default drops every record.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a session reading answers from in and writing prompts
// to out. Colours are enabled only when out is a terminal.
func NewSession(handlers Handlers, in io.Reader, out io.Writer, opts ...Option) *Session {
	colors := color.New()
	colors.SetOutput(out)

	s := &Session{
		handlers: handlers,
		scanner:  bufio.NewScanner(in),
		out:      &errWriter{w: out},
		colors:   colors,
		logger:   logger.Discard(),
		clear:    true,
		state:    StateSelectFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "console")

	s.transitions = map[State]transition{
		StateSelectFile:       s.selectFile,
		StateConfirmDelivery:  s.confirmDelivery,
		StateExitOrReload:     s.exitOrReload,
		StateMainMenu:         s.mainMenu,
		StateSearch:           s.search,
		StateSearchByID:       s.searchByID,
		StateSearchByAddress:  s.searchByAddress,
		StateRoute:            s.route,
		StateRouteOrders:      s.routeOrders,
		StateConfirmTerminate: s.confirmTerminate,
	}

	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run drives the state machine until it reaches StateTerminated, input ends
// or ctx is cancelled. It returns the first input, output or context error.
func (s *Session) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Console session started")

	var ctxErr error
	for s.state != StateTerminated {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}

		next := s.transitions[s.state](ctx)
		s.logger.DebugContext(ctx, "State transition", "from", s.state, "to", next)
		s.state = next
	}
	s.state = StateTerminated

	s.print(msgTerminated)
	s.logger.InfoContext(ctx, "Console session terminated")

	return errors.Join(ctxErr, s.readErr, s.out.err)
}

// prompt prints p and reads one answer. ok is false once input is exhausted.
func (s *Session) prompt(p string) (answer string, ok bool) {
	s.print(p)
	if !s.scanner.Scan() {
		s.readErr = s.scanner.Err()
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) printError(text string) {
	s.print(s.colors.Red(text))
}

func (s *Session) clearScreen() {
	if s.clear {
		s.print(strings.Repeat("\n", clearScreenLineCount))
	}
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
