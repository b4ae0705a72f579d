// Package services contains domain services that coordinate behavior across
// aggregates without belonging to any single one.
//
// CourierRanker implements the availability listing contract: only online
// couriers are visible, ordered by great-circle distance from the commerce,
// with couriers that have not reported a position listed after all located
// ones.
package services
