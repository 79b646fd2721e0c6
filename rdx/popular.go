package rdx

import "wayfare/globals"

const popularDestinationsKey = "popular:destinations"

// BumpDestination increments the popularity counter for a destination.
func BumpDestination(name string) error {
	return Conn.ZIncrBy(globals.Ctx, popularDestinationsKey, 1, name).Err()
}

// TopDestinations returns up to n destination names, most popular first.
func TopDestinations(n int64) ([]string, error) {
	return Conn.ZRevRange(globals.Ctx, popularDestinationsKey, 0, n-1).Result()
}
