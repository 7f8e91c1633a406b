// Package config loads runtime configuration for the authboot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//     Comments and trailing commas are allowed.
//  3. Environment variables prefixed with AUTHBOOT_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth API
//	-d string   path of the local SQLite store
//	-p string   path of the HTML page
//	-s string   CSS selector of the main heading
//	-l string   log level
//
// # JSON schema
//
//	{
//	  // where registration requests go
//	  "base_url": "https://v2.api.noroff.dev/",
//	  "db_path": "authboot.db",
//	  "page_path": "index.html",
//	  "heading_selector": "h1",
//	  "email_domain": "noroff.no",
//	  "token_path": "accessToken",
//	  "log_level": "info",
//	}
//
// Environment
//
//	AUTHBOOT_BASE_URL, AUTHBOOT_DB_PATH, AUTHBOOT_PAGE_PATH,
//	AUTHBOOT_HEADING_SELECTOR, AUTHBOOT_EMAIL_DOMAIN, AUTHBOOT_TOKEN_PATH,
//	AUTHBOOT_LOG_LEVEL
//
// Primary API
//
//   - type Config                     - runtime settings
//   - func LoadConfig() *Config       - defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   - sets sensible defaults
package config
