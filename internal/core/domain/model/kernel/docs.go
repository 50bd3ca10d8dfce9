// Package kernel provides the value objects shared by the routebook domain model.
//
// The package includes:
//   - Address: a delivery destination (house number, street, postal code),
//     normalised to lower case so lookups are case-insensitive
//   - UUID: an identifier wrapping github.com/google/uuid, used to tell
//     individual manifest loads apart
//
// Both are immutable and must be created through their constructors; their
// zero values fail Validate.
package kernel
