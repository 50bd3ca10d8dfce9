package console

import "fmt"

// State is a step of the interactive workflow. Every state reads at most one
// line of input and names the state that follows.
type State int

const (
	StateSelectFile State = iota
	StateConfirmDelivery
	StateExitOrReload
	StateMainMenu
	StateSearch
	StateSearchByID
	StateSearchByAddress
	StateRoute
	StateRouteOrders
	StateConfirmTerminate
	StateTerminated
)

var stateNames = map[State]string{
	StateSelectFile:       "select_file",
	StateConfirmDelivery:  "confirm_delivery",
	StateExitOrReload:     "exit_or_reload",
	StateMainMenu:         "main_menu",
	StateSearch:           "search",
	StateSearchByID:       "search_by_id",
	StateSearchByAddress:  "search_by_address",
	StateRoute:            "route",
	StateRouteOrders:      "route_orders",
	StateConfirmTerminate: "confirm_terminate",
	StateTerminated:       "terminated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}
