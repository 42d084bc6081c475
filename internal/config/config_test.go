package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Oracle.URL == "" {
		t.Error("default oracle URL is empty")
	}
	if cfg.Origin == "" {
		t.Error("default origin is empty")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletgate.yaml")
	content := `
origin: my-page
oracle:
  url: http://scoring.internal:8000
  explain: true
  explain_with_llm: false
alerts:
  - url: https://hooks.example.com/T123
    format: slack
    events: [reject, failopen]
metrics_addr: ":9415"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Origin != "my-page" {
		t.Errorf("Origin = %q", cfg.Origin)
	}
	if cfg.Oracle.URL != "http://scoring.internal:8000" {
		t.Errorf("Oracle.URL = %q", cfg.Oracle.URL)
	}
	if !cfg.Oracle.Explain || cfg.Oracle.ExplainWithLLM {
		t.Errorf("explain flags = %+v", cfg.Oracle)
	}
	if len(cfg.Alerts) != 1 || cfg.Alerts[0].Format != "slack" {
		t.Errorf("Alerts = %+v", cfg.Alerts)
	}
	if cfg.MetricsAddr != ":9415" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr)
	}
}

func TestLoadMissingOracleURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletgate.yaml")
	if err := os.WriteFile(path, []byte("oracle:\n  url: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty oracle.url")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletgate.yaml")
	if err := os.WriteFile(path, []byte("oracle:\n  url: http://a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Current().Oracle.URL != "http://a" {
		t.Fatalf("initial URL = %q", s.Current().Oracle.URL)
	}

	if err := os.WriteFile(path, []byte("oracle:\n  url: http://b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if s.Current().Oracle.URL != "http://b" {
		t.Errorf("reloaded URL = %q", s.Current().Oracle.URL)
	}
}

func TestStoreReloadKeepsOldOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletgate.yaml")
	if err := os.WriteFile(path, []byte("oracle:\n  url: http://a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("oracle: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err == nil {
		t.Error("expected reload error for broken YAML")
	}
	if s.Current().Oracle.URL != "http://a" {
		t.Errorf("previous config not retained: %q", s.Current().Oracle.URL)
	}
}
