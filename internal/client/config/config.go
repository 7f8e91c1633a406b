package config

// Config holds runtime settings for the authboot CLI.
//
// Fields:
//   - BaseURL: root of the remote auth API; registration goes to BaseURL + "auth/register".
//   - DBPath: SQLite file backing the key-value store; ":memory:" keeps nothing on disk.
//   - PagePath: HTML page whose main heading reflects the session state.
//   - HeadingSelector: CSS selector of that heading.
//   - EmailDomain: organizational domain accepted by the email validator.
//   - TokenPath: gjson path of the access token in the registration response.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	BaseURL         string `env:"BASE_URL"`
	DBPath          string `env:"DB_PATH"`
	PagePath        string `env:"PAGE_PATH"`
	HeadingSelector string `env:"HEADING_SELECTOR"`
	EmailDomain     string `env:"EMAIL_DOMAIN"`
	TokenPath       string `env:"TOKEN_PATH"`
	LogLevel        string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://v2.api.noroff.dev/"
	c.DBPath = "authboot.db"
	c.PagePath = "index.html"
	c.HeadingSelector = "h1"
	c.EmailDomain = "noroff.no"
	c.TokenPath = "accessToken"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
