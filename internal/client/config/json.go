package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ykarpenko/sessionkeeper/internal/flagx"
	"github.com/ykarpenko/sessionkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	IdentityEndpoint string         `json:"identity_endpoint"`
	ProfileStoreURL  string         `json:"profile_store_url"`
	StoragePath      string         `json:"storage_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. If no file is given, nothing happens. Read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.IdentityEndpoint != "" {
		cfg.IdentityEndpoint = jc.IdentityEndpoint
	}
	if jc.ProfileStoreURL != "" {
		cfg.ProfileStoreURL = jc.ProfileStoreURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
