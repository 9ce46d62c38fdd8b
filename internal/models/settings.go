package models

import "strconv"

// Setting is one row of site-wide configuration.
type Setting struct {
	Key   string `json:"key" db:"setting_key"`
	Value string `json:"value" db:"setting_value"`
}

// SiteSettings is the full site configuration keyed by setting name.
type SiteSettings map[string]string

func (s SiteSettings) String(key, def string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

func (s SiteSettings) Int(key string, def int) int {
	if v, ok := s[key]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (s SiteSettings) Bool(key string, def bool) bool {
	if v, ok := s[key]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
