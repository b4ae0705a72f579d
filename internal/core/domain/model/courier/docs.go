// Package courier provides the courier ("motoboy") aggregate of the
// marketplace. It manages courier identity, online presence and the last
// known position used by commerce-side listings.
//
// Key business rules:
//   - Couriers must have a valid unique identifier and a non-empty name
//   - Only online couriers are visible to commerces
//   - The position is ephemeral: overwritten on every refresh while online,
//     last write wins, never versioned
//   - The delivery counter only moves forward, once per successful collection
package courier
