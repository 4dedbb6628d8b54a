package cli

import (
	"log/slog"
	"time"

	"ytlookup/internal/cache"
	"ytlookup/internal/proxy"
	"ytlookup/internal/youtube"
	"ytlookup/pkg/models"
)

// newLookupService builds the upstream client, cache and limiter from config.
// The cache is returned as well so the server can report and manage it.
func newLookupService(cfg *models.Config, lookupEnv func(string) (string, bool)) (*proxy.Service, *cache.Manager) {
	var remote cache.Store
	if len(cfg.MemcachedServers) > 0 {
		store := cache.NewMemcachedStore(cfg.MemcachedServers...)
		if err := store.Ping(); err != nil {
			slog.Warn("memcached ping failed",
				slog.Any("servers", cfg.MemcachedServers),
				slog.Any("error", err),
			)
		}
		remote = store
	}

	cacheMgr := cache.NewManager(time.Duration(cfg.CacheTTL)*time.Second, cfg.CacheMaxEntries, remote)

	client := youtube.NewClient(
		youtube.WithBaseURL(cfg.APIBaseURL),
		youtube.WithTimeout(time.Duration(cfg.UpstreamTimeout)*time.Second),
	)

	service := proxy.NewService(client, proxy.LookupKey(cfg.APIKeyEnv, lookupEnv),
		proxy.WithCache(cacheMgr),
		proxy.WithRateLimit(cfg.UpstreamRate, cfg.UpstreamBurst),
	)

	return service, cacheMgr
}
