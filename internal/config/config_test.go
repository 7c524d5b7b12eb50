package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

const validConfig = `
similarity:
  prefix_weight: 0.1
  max_prefix: 4
  length_diff_penalty_per_token: 0.05
  unmatched_token_penalty: 0.1
  token_match_threshold: 0.7
weights:
  name_comparison: 0.4
  alt_name_comparison: 0.2
  gov_id_comparison: 0.2
  crypto_comparison: 0.1
  contact_comparison: 0.05
  address_comparison: 0.05
  date_comparison: 0.0
  name_enabled: true
  alt_names_enabled: true
  government_id_enabled: true
  crypto_enabled: true
  contact_enabled: true
  address_enabled: true
  date_enabled: true
  exact_match_threshold: 0.97
search:
  min_score_threshold: 0.5
  default_limit: 25
  max_limit: 200
  batch_min_items: 1
  batch_max_items: 1000
  item_timeout_seconds: 30
  max_workers: 16
`

func TestLoad_ValidConfigParsesSuccessfully(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading valid config: %v", err)
	}
	if cfg.Search.MaxLimit != 200 {
		t.Fatalf("expected max_limit=200, got %d", cfg.Search.MaxLimit)
	}
}

func TestLoad_MissingRequiredFieldIsFatalNotSilentlyDefaulted(t *testing.T) {
	path := writeConfig(t, `
similarity:
  max_prefix: 4
  token_match_threshold: 0.7
weights:
  name_comparison: 0.4
search:
  max_limit: 200
  batch_max_items: 1000
  item_timeout_seconds: 30
  max_workers: 0
`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected an error for max_workers=0, got nil")
	}
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	if _, err := Load("/nonexistent/path/scoring.yaml"); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestResolver_ReloadSwapsConfigAtomically(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewResolver(cfg)

	if err := os.WriteFile(path, []byte(validConfig+"\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}
	if err := r.Reload(path); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	if r.Current().Search.MaxLimit != 200 {
		t.Fatalf("expected reloaded config to retain max_limit=200")
	}
}

func TestResolver_FailedReloadKeepsPreviousConfig(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewResolver(cfg)

	badPath := writeConfig(t, "similarity:\n  max_prefix: 0\n")
	if err := r.Reload(badPath); err == nil {
		t.Fatalf("expected reload of invalid config to fail")
	}
	if r.Current().Search.MaxLimit != 200 {
		t.Fatalf("expected the previous valid config to remain active after a failed reload")
	}
}

func TestResolver_ResolveAppliesFieldWiseOverride(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewResolver(cfg)

	overrideName := 0.9
	overrideDateEnabled := false
	resolved := r.Resolve(&Override{
		Weights: &WeightsOverride{
			NameComparison: &overrideName,
			DateEnabled:    &overrideDateEnabled,
		},
	})
	if resolved.Weights.NameComparison != 0.9 {
		t.Fatalf("expected overridden name_comparison=0.9, got %.2f", resolved.Weights.NameComparison)
	}
	if resolved.Weights.DateEnabled != false {
		t.Fatalf("expected overridden date_enabled=false")
	}
	if resolved.Weights.AltNameComparison != 0.2 {
		t.Fatalf("expected non-overridden alt_name_comparison to keep its default, got %.2f", resolved.Weights.AltNameComparison)
	}
	if r.Current().Weights.NameComparison != 0.4 {
		t.Fatalf("expected Resolve to never mutate the shared default config")
	}
}

func TestResolver_ResolveWithNilOverrideReturnsDefaults(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewResolver(cfg)

	resolved := r.Resolve(nil)
	if resolved.Weights.NameComparison != 0.4 {
		t.Fatalf("expected a nil override to resolve to the plain defaults")
	}
}
