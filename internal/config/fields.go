package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"ytlookup/pkg/models"
)

// ErrUnknownKey is returned by SetField for names that are not config keys
var ErrUnknownKey = errors.New("unknown config key")

type fieldSetter func(cfg *models.Config, value string) error

func setString(field func(*models.Config) *string) fieldSetter {
	return func(cfg *models.Config, value string) error {
		*field(cfg) = value
		return nil
	}
}

func setInt(field func(*models.Config) *int) fieldSetter {
	return func(cfg *models.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrInvalidConfig, value)
		}
		*field(cfg) = n
		return nil
	}
}

func setFloat(field func(*models.Config) *float64) fieldSetter {
	return func(cfg *models.Config, value string) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidConfig, value)
		}
		*field(cfg) = f
		return nil
	}
}

func setList(field func(*models.Config) *[]string) fieldSetter {
	return func(cfg *models.Config, value string) error {
		*field(cfg) = splitList(value)
		return nil
	}
}

// setters is keyed by the JSON name of each field
var setters = map[string]fieldSetter{
	"bindHost":               setString(func(c *models.Config) *string { return &c.BindHost }),
	"webServerPort":          setInt(func(c *models.Config) *int { return &c.WebServerPort }),
	"apiBaseUrl":             setString(func(c *models.Config) *string { return &c.APIBaseURL }),
	"apiKeyEnv":              setString(func(c *models.Config) *string { return &c.APIKeyEnv }),
	"upstreamTimeoutSeconds": setInt(func(c *models.Config) *int { return &c.UpstreamTimeout }),
	"upstreamRatePerSecond":  setFloat(func(c *models.Config) *float64 { return &c.UpstreamRate }),
	"upstreamBurst":          setInt(func(c *models.Config) *int { return &c.UpstreamBurst }),
	"cacheTtlSeconds":        setInt(func(c *models.Config) *int { return &c.CacheTTL }),
	"cacheMaxEntries":        setInt(func(c *models.Config) *int { return &c.CacheMaxEntries }),
	"locale":                 setString(func(c *models.Config) *string { return &c.Locale }),
	"defaultTheme":           setString(func(c *models.Config) *string { return &c.DefaultTheme }),
	"proxyUrl":               setString(func(c *models.Config) *string { return &c.ProxyURL }),
	"memcachedServers":       setList(func(c *models.Config) *[]string { return &c.MemcachedServers }),
}

// SetField assigns value to the field with the given JSON name.
// memcachedServers takes a comma-separated list.
func SetField(cfg *models.Config, key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return set(cfg, value)
}

// Keys lists the names accepted by SetField
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
