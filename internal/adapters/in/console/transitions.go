package console

import (
	"context"
	"errors"
	"strings"

	"routebook/internal/core/application/usecases/commands"
	"routebook/internal/core/application/usecases/queries"
	"routebook/internal/pkg/errs"
)

func normalise(answer string) string {
	return strings.ToLower(answer)
}

func (s *Session) selectFile(ctx context.Context) State {
	path, ok := s.prompt(promptDeliveryFile)
	if !ok {
		return StateTerminated
	}

	query, err := queries.NewReadManifestQuery(path)
	if err != nil {
		s.printError(msgFileNotFound)
		return StateSelectFile
	}

	resp, err := s.handlers.ReadManifest.Handle(ctx, query)
	switch {
	case errors.Is(err, errs.ErrFormatIsInvalid):
		s.logger.WarnContext(ctx, "Manifest is malformed", "path", path, "error", err)
		s.printError(msgBadFormat)
		return StateTerminated
	case err != nil:
		s.logger.DebugContext(ctx, "Manifest not readable", "path", path, "error", err)
		s.printError(msgFileNotFound)
		return StateSelectFile
	}

	s.pending = resp.Delivery
	s.print("\n")
	for _, o := range resp.Orders {
		s.printf("%s\n", o)
	}
	s.print("\n")

	return StateConfirmDelivery
}

func (s *Session) confirmDelivery(ctx context.Context) State {
	answer, ok := s.prompt(promptConfirm)
	if !ok {
		return StateTerminated
	}
	s.clearScreen()

	switch normalise(answer) {
	case answerYes:
		cmd, err := commands.NewConfirmDeliveryCommand(s.pending)
		if err == nil {
			err = s.handlers.ConfirmDelivery.Handle(ctx, cmd)
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to confirm delivery", "error", err)
			s.printError(err.Error() + "\n")
			return StateSelectFile
		}

		s.logger.InfoContext(ctx, "Delivery confirmed",
			"delivery_id", s.pending.ID().String(),
			"orders", s.pending.Count(),
		)
		s.pending = nil
		s.print(s.colors.Green(msgDeliveryCreated) + "\n")
		return StateMainMenu
	case answerNo:
		s.pending = nil
		return StateExitOrReload
	default:
		s.printError(msgInvalidConfirm)
		return StateConfirmDelivery
	}
}

func (s *Session) exitOrReload(_ context.Context) State {
	answer, ok := s.prompt(promptExitOrReload)
	if !ok || normalise(answer) == answerExit {
		return StateTerminated
	}

	s.print(msgNewFilename + "\n")
	return StateSelectFile
}

func (s *Session) mainMenu(_ context.Context) State {
	answer, ok := s.prompt(promptMainMenu)
	if !ok {
		return StateTerminated
	}
	s.clearScreen()

	switch normalise(answer) {
	case answerSearch:
		return StateSearch
	case answerRoute:
		return StateRoute
	case answerExit:
		return StateConfirmTerminate
	default:
		s.printError(msgInvalidMenu + "\n")
		return StateMainMenu
	}
}

func (s *Session) search(_ context.Context) State {
	answer, ok := s.prompt(promptSearchMenu)
	if !ok {
		return StateTerminated
	}

	switch normalise(answer) {
	case answerSearchByID:
		return StateSearchByID
	case answerSearchByAddr:
		return StateSearchByAddress
	default:
		s.printError(msgInvalidSearch)
		return StateSearch
	}
}

func (s *Session) searchByID(ctx context.Context) State {
	id, ok := s.prompt(promptOrderID)
	if !ok {
		return StateTerminated
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		s.printError(msgOrderNotFound)
		return StateSearch
	}

	o, err := s.handlers.GetOrderByID.Handle(ctx, query)
	if err != nil {
		s.logger.DebugContext(ctx, "Order lookup missed", "order_id", id, "error", err)
		s.printError(msgOrderNotFound)
		return StateSearch
	}

	s.printf("\n%s\n\n", o)
	return StateMainMenu
}

func (s *Session) searchByAddress(ctx context.Context) State {
	raw, ok := s.prompt(promptAddress)
	if !ok {
		return StateTerminated
	}

	query, err := queries.NewSearchOrderByAddressQuery(raw)
	if err != nil {
		s.printError(msgInvalidAddress)
		return StateSearch
	}

	resp, err := s.handlers.SearchByAddress.Handle(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "Address search failed", "error", err)
		s.printError(err.Error() + "\n")
		return StateMainMenu
	}
	if !resp.Found {
		s.printError(msgOrderNotFound)
		return StateSearch
	}

	s.printf("\n%s\n\n", resp.Order)
	return StateMainMenu
}

func (s *Session) route(_ context.Context) State {
	name, ok := s.prompt(promptRouteName)
	if !ok {
		return StateTerminated
	}

	s.routeName = name
	return StateRouteOrders
}

func (s *Session) routeOrders(ctx context.Context) State {
	raw, ok := s.prompt(promptRouteOrders)
	if !ok {
		return StateTerminated
	}

	lines, err := s.routeReport(ctx, raw)
	if err != nil {
		s.logger.DebugContext(ctx, "Route rejected", "route", s.routeName, "error", err)
		s.printError("\n" + err.Error() + "\n\n")
		return StateMainMenu
	}

	s.print("\n")
	for _, line := range lines {
		s.printf("%s\n", line)
	}
	s.print("\n")
	return StateMainMenu
}

func (s *Session) routeReport(ctx context.Context, rawOrderIDs string) ([]string, error) {
	query, err := queries.ParseGetRouteReportQuery(s.routeName, rawOrderIDs)
	if err != nil {
		return nil, err
	}

	report, err := s.handlers.RouteReport.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return report.Lines(), nil
}

func (s *Session) confirmTerminate(_ context.Context) State {
	answer, ok := s.prompt(promptTerminate)
	if !ok {
		return StateTerminated
	}

	switch normalise(answer) {
	case answerYes:
		return StateTerminated
	case answerNo:
		s.print("\n\n\n")
		return StateSelectFile
	default:
		s.print(msgInvalidTerminate)
		return StateTerminated
	}
}
