// Package kernel provides core domain primitives for the delivery marketplace.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for WGS-84 coordinates with haversine distance
//   - distance formatting shared by courier listings and tracking views
//
// These primitives enforce domain invariants at construction time, are
// immutable and safe for concurrent use.
package kernel
