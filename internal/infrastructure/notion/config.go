package notion

const (
	DefaultBaseURL       = "https://api.notion.com/v1"
	DefaultVersion       = "2022-06-28"
	DefaultTitleProperty = "Name"
	DefaultPageSize      = 100
)

type Config struct {
	APIKey        string
	DatabaseID    string `yaml:"database_id"`
	BaseURL       string `yaml:"base_url"`
	Version       string `yaml:"version"`
	TitleProperty string `yaml:"title_property"`
	PageSize      int    `yaml:"page_size"`
	// Timeout bounds a single API call; 0 leaves it to the transport.
	Timeout int64 `yaml:"timeout_in_ms"`
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.TitleProperty == "" {
		c.TitleProperty = DefaultTitleProperty
	}
	if c.PageSize <= 0 || c.PageSize > DefaultPageSize {
		c.PageSize = DefaultPageSize
	}
}
