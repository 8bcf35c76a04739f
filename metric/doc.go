// Package metric collects ready-made Distance functions for common
// coordinate and sequence types, for callers who don't want to write
// their own. It covers the handful general enough to be worth
// shipping; anything domain-specific is left for the caller to supply.
//
// For example, indexing geographic coordinates calls for great-circle
// distance rather than Euclidean distance. This package does not ship
// one, but a caller reaching for github.com/umahmood/haversine would
// wire it in exactly like Euclidean or Levenshtein:
//
//	tree, err := mtree.New[LatLng](func(a, b LatLng) float64 {
//		_, km := haversine.Distance(
//			haversine.Coord{Lat: a.Lat, Lon: a.Lon},
//			haversine.Coord{Lat: b.Lat, Lon: b.Lon},
//		)
//		return km
//	})
package metric
