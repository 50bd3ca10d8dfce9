// Package order provides the Order entity: one delivery stop read from a
// manifest block.
//
// An Order carries the order id, the customer name, a free-form phone number,
// a kernel.Address and an optional note. Orders are immutable once created
// with NewOrder; the note is supplied explicitly with WithNote and reads as
// NoNote ("N/A") when absent.
package order
