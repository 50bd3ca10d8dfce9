// Package delivery provides the Delivery aggregate: every order parsed from one
// manifest, keyed by order id.
//
// Key business rules:
//   - Order ids are non-empty and unique within a delivery
//   - Count is the number of orders actually stored
//   - A delivery is read-only once built; loading another manifest produces a
//     new Delivery instead of mutating the current one
//
// Lookups come in two flavours. LookupByID fails with errs.ObjectNotFoundError
// on a miss, while SearchByAddress reports a miss through its boolean result so
// that "no order at this address" is never confused with a failure.
package delivery
