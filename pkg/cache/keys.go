package cache

import (
	"fmt"
)

// Key namespaces. Every property-derived key lives under PropertiesNamespace
// so a single prefix invalidation clears all of them after a write.
const (
	PropertiesNamespace = "properties:"
	SearchNamespace     = PropertiesNamespace + "search:"
	CountNamespace      = PropertiesNamespace + "count:"
	DetailNamespace     = PropertiesNamespace + "detail:"
	ReferenceNamespace  = "reference:"
	SettingsNamespace   = "settings:"
)

// cache key for one page of a property search. canonical is the
// order-independent encoding of the filter.
func PropertySearchKey(canonical string) string {
	return SearchNamespace + canonical
}

// cache key for the total count of a property search, independent of page,
// page size and sort.
func PropertyCountKey(canonical string) string {
	return CountNamespace + canonical
}

// cache key for a single published property.
func PropertyKey(id int64) string {
	return fmt.Sprintf("%s%d", DetailNamespace, id)
}

// cache key for a reference data list (cities, districts, amenities).
func ReferenceKey(kind string) string {
	return ReferenceNamespace + kind
}

// cache key for the site-wide settings.
func SiteSettingsKey() string {
	return SettingsNamespace + "site"
}
