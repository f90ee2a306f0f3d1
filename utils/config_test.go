package utils

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"mememage-web/models"
)

func TestConfigDefaults(t *testing.T) {
	conf, err := NewConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if got := conf.String("api.base_url"); got != models.DefaultAPIBaseURL {
		t.Errorf("api.base_url = %q", got)
	}
	if got := conf.Int("feed.limit"); got != models.DefaultFeedLimit {
		t.Errorf("feed.limit = %d", got)
	}
	if got := conf.Duration("client.idle_timeout"); got != models.DefaultIdleTimeout {
		t.Errorf("client.idle_timeout = %v", got)
	}
	if got := conf.Strings("memes.templates"); !slices.Equal(got, models.DefaultTemplates) {
		t.Errorf("memes.templates = %v", got)
	}
}

func TestConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[api]
base_url = "http://file.example/api"
timeout = "3s"

[storage]
driver = "memory"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEMEMAGE_API_BASE_URL", "http://env.example/api")
	t.Setenv("MEMEMAGE_MEMES_TEMPLATES", "drake,two-buttons")

	conf, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if got := conf.String("api.base_url"); got != "http://env.example/api" {
		t.Errorf("api.base_url = %q, want env value", got)
	}
	if got := conf.Duration("api.timeout"); got != 3*time.Second {
		t.Errorf("api.timeout = %v, want file value", got)
	}
	if got := conf.String("storage.driver"); got != "memory" {
		t.Errorf("storage.driver = %q", got)
	}
	if got := conf.Strings("memes.templates"); !slices.Equal(got, []string{"drake", "two-buttons"}) {
		t.Errorf("memes.templates = %v", got)
	}
	if got := conf.Int("server.port"); got != models.DefaultPort {
		t.Errorf("server.port = %d, want default", got)
	}
}

func TestConfigRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[api\nbase_url = "), 0o644)

	if _, err := NewConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
