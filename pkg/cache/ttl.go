package cache

import "time"

// TTL tiers. A query shape always uses the same tier.
const (
	// free-text searches and paginated listings
	TTLSearch = 30 * time.Second
	// single listing lookups
	TTLDetail = 30 * time.Second
	// count-only queries
	TTLCount = 2 * time.Minute
	// site-wide configuration
	TTLSettings = 5 * time.Minute
	// cities, districts, amenities
	TTLReference = 10 * time.Minute
)
