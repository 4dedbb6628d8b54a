package models

// Config represents the application configuration
type Config struct {
	BindHost         string   `json:"bindHost" validate:"required"`
	WebServerPort    int      `json:"webServerPort" validate:"min=0,max=65535"`
	APIBaseURL       string   `json:"apiBaseUrl" validate:"required,url"`
	APIKeyEnv        string   `json:"apiKeyEnv" validate:"required"`
	UpstreamTimeout  int      `json:"upstreamTimeoutSeconds" validate:"min=0"`
	UpstreamRate     float64  `json:"upstreamRatePerSecond" validate:"min=0"`
	UpstreamBurst    int      `json:"upstreamBurst" validate:"min=0"`
	CacheTTL         int      `json:"cacheTtlSeconds" validate:"min=0,max=2592000"`
	CacheMaxEntries  int      `json:"cacheMaxEntries" validate:"min=0"`
	MemcachedServers []string `json:"memcachedServers" validate:"dive,hostname_port"`
	Locale           string   `json:"locale" validate:"required,bcp47_language_tag"`
	DefaultTheme     string   `json:"defaultTheme" validate:"oneof=light dark"`
	ProxyURL         string   `json:"proxyUrl" validate:"omitempty,url"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		BindHost:         "127.0.0.1",
		WebServerPort:    3000,
		APIBaseURL:       "https://youtube.googleapis.com",
		APIKeyEnv:        "YOUTUBE_API_KEY",
		UpstreamTimeout:  15,
		UpstreamRate:     5,
		UpstreamBurst:    10,
		CacheTTL:         300,
		CacheMaxEntries:  500,
		MemcachedServers: []string{},
		Locale:           "en-US",
		DefaultTheme:     "light",
		ProxyURL:         "",
	}
}
