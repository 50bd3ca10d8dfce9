// Package services provides domain services that work across a Delivery and
// the values used to query it.
//
// The package includes:
//   - RouteReporter: resolves a Route against a Delivery and renders the
//     resulting route report in the route's order
package services
