package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytlookup/pkg/models"
)

func TestSetField(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, cfg *models.Config)
	}{
		{"webServerPort", "8080", func(t *testing.T, cfg *models.Config) { assert.Equal(t, 8080, cfg.WebServerPort) }},
		{"bindHost", "0.0.0.0", func(t *testing.T, cfg *models.Config) { assert.Equal(t, "0.0.0.0", cfg.BindHost) }},
		{"upstreamRatePerSecond", "2.5", func(t *testing.T, cfg *models.Config) { assert.Equal(t, 2.5, cfg.UpstreamRate) }},
		{"cacheTtlSeconds", "60", func(t *testing.T, cfg *models.Config) { assert.Equal(t, 60, cfg.CacheTTL) }},
		{"defaultTheme", "dark", func(t *testing.T, cfg *models.Config) { assert.Equal(t, "dark", cfg.DefaultTheme) }},
		{"memcachedServers", "a:11211, b:11211", func(t *testing.T, cfg *models.Config) {
			assert.Equal(t, []string{"a:11211", "b:11211"}, cfg.MemcachedServers)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := models.DefaultConfig()
			require.NoError(t, SetField(cfg, tt.key, tt.value))
			tt.check(t, cfg)
		})
	}
}

func TestSetFieldErrors(t *testing.T) {
	cfg := models.DefaultConfig()

	err := SetField(cfg, "nope", "1")
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = SetField(cfg, "webServerPort", "abc")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, 3000, cfg.WebServerPort)
}

func TestKeysCoverConfig(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 13)
	assert.Contains(t, keys, "webServerPort")
	assert.Contains(t, keys, "memcachedServers")
	assert.IsIncreasing(t, keys)
}

func TestSetFieldThroughUpdate(t *testing.T) {
	manager, err := NewManager(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	err = manager.Update(func(cfg *models.Config) error {
		return SetField(cfg, "defaultTheme", "sepia")
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "light", manager.Get().DefaultTheme)

	err = manager.Update(func(cfg *models.Config) error {
		return SetField(cfg, "defaultTheme", "dark")
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", manager.Get().DefaultTheme)
}
