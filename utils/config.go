package utils

import (
	"errors"
	"io/fs"
	"strings"

	"mememage-web/models"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "MEMEMAGE_"

func defaults() map[string]any {
	return map[string]any{
		"server.port":             models.DefaultPort,
		"api.base_url":            models.DefaultAPIBaseURL,
		"api.timeout":             models.DefaultAPITimeout.String(),
		"feed.limit":              models.DefaultFeedLimit,
		"storage.driver":          models.DefaultStorageDriver,
		"storage.path":            models.DefaultStoragePath,
		"database.url":            "",
		"client.idle_timeout":     models.DefaultIdleTimeout.String(),
		"client.cleanup_interval": models.DefaultCleanupInterval.String(),
		"memes.templates":         models.DefaultTemplates,
		"log.level":               "info",
	}
}

// NewConfig layers defaults, then path (skipped when missing), then
// MEMEMAGE_* environment variables.
func NewConfig(path string) (*koanf.Koanf, error) {
	conf := koanf.New(".")

	if err := conf.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	if path != "" {
		err := conf.Load(file.Provider(path), toml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	err := conf.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
			// the first underscore separates section from key: API_BASE_URL -> api.base_url
			k = strings.Replace(k, "_", ".", 1)
			if k == "memes.templates" {
				return k, strings.Split(v, ",")
			}
			return k, v
		},
	}), nil)
	if err != nil {
		return nil, err
	}

	return conf, nil
}
