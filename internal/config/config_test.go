package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.Mode != ModeOffline {
		t.Errorf("mode = %v", cfg.Mode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("driver = %q", cfg.DBDriver)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("mode: online\ndb_driver: mongo\nmongo_uri: mongodb://db:27017\nhttp_addr: \":9090\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeOnline || cfg.DBDriver != "mongo" || cfg.HTTPAddr != ":9090" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("mongo uri = %q", cfg.MongoURI)
	}
}

func TestLoadRejectsBadDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mode: offline\ndb_driver: oracle\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("invalid driver must fail")
	}
}
