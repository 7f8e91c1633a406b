package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authboot/internal/flagx"
	"github.com/tidwall/jsonc"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" apart from "set to empty", so a partial file only overrides
// the keys it names.
type JsonConfig struct {
	BaseURL         *string `json:"base_url"`
	DBPath          *string `json:"db_path"`
	PagePath        *string `json:"page_path"`
	HeadingSelector *string `json:"heading_selector"`
	EmailDomain     *string `json:"email_domain"`
	TokenPath       *string `json:"token_path"`
	LogLevel        *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag (flagx.JsonConfigFlags);
// without one nothing is loaded. Comments and trailing commas are accepted
// (the file is normalized with jsonc first). Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.BaseURL, jc.BaseURL)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.PagePath, jc.PagePath)
	overlay(&cfg.HeadingSelector, jc.HeadingSelector)
	overlay(&cfg.EmailDomain, jc.EmailDomain)
	overlay(&cfg.TokenPath, jc.TokenPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
