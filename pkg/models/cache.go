package models

import "time"

// CacheEntry represents a cached upstream payload
type CacheEntry struct {
	ID         string    `json:"id"`
	Body       []byte    `json:"-"`
	Size       int64     `json:"size"`
	LastAccess time.Time `json:"lastAccess"`
	Created    time.Time `json:"created"`
	Expires    time.Time `json:"expires"`
}
