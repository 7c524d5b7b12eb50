// Package config implements the Configuration Resolver: loading the
// similarity, weights, and search sections from a YAML file at startup
// and resolving per-request overrides against those defaults. There are
// no hard-coded fallback values — a missing or malformed default
// configuration file is a fatal startup error, never silently patched
// over with constants baked into the binary.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/BraidFI-AI/sanctions-engine/internal/similarity"
)

// Similarity holds the Similarity Kernel's tunables.
type Similarity struct {
	PrefixWeight              float64 `yaml:"prefix_weight"`
	MaxPrefix                 int     `yaml:"max_prefix"`
	LengthDiffPenaltyPerToken float64 `yaml:"length_diff_penalty_per_token"`
	UnmatchedTokenPenalty     float64 `yaml:"unmatched_token_penalty"`
	TokenMatchThreshold       float64 `yaml:"token_match_threshold"`
	PhoneticFilteringDisabled bool    `yaml:"phonetic_filtering_disabled"`
}

// Weights holds the per-phase aggregation weights the Scorer uses in
// AGGREGATION. Every phase that can contribute bilateral data has a
// named weight; phases with no data for a given comparison are excluded
// from the weighted denominator rather than scored as zero.
type Weights struct {
	NameComparison    float64 `yaml:"name_comparison"`
	AltNameComparison float64 `yaml:"alt_name_comparison"`
	GovIDComparison   float64 `yaml:"gov_id_comparison"`
	CryptoComparison  float64 `yaml:"crypto_comparison"`
	ContactComparison float64 `yaml:"contact_comparison"`
	AddressComparison float64 `yaml:"address_comparison"`
	DateComparison    float64 `yaml:"date_comparison"`

	// NameEnabled through DateEnabled are the seven phase enable flags:
	// a disabled phase never enters AGGREGATION's weighted denominator,
	// regardless of whether it had bilateral data to compare.
	NameEnabled    bool `yaml:"name_enabled"`
	AltNameEnabled bool `yaml:"alt_names_enabled"`
	GovIDEnabled   bool `yaml:"government_id_enabled"`
	CryptoEnabled  bool `yaml:"crypto_enabled"`
	ContactEnabled bool `yaml:"contact_enabled"`
	AddressEnabled bool `yaml:"address_enabled"`
	DateEnabled    bool `yaml:"date_enabled"`

	// ExactMatchThreshold is the NAME_COMPARISON score at or above which
	// a pair is flagged as an exact identity match in the breakdown.
	ExactMatchThreshold float64 `yaml:"exact_match_threshold"`

	AddressLine1 float64 `yaml:"address_line1"`
	AddressLine2 float64 `yaml:"address_line2"`
	AddressCity  float64 `yaml:"address_city"`
	AddressState float64 `yaml:"address_state"`
	AddressPostal float64 `yaml:"address_postal"`
	AddressCountry float64 `yaml:"address_country"`

	AddressJaroWinklerWeight float64 `yaml:"address_jaro_winkler_weight"`
	AddressLevenshteinWeight float64 `yaml:"address_levenshtein_weight"`
}

// Search holds the Search Engine's operational bounds.
type Search struct {
	MinScoreThreshold float64 `yaml:"min_score_threshold"`
	DefaultLimit      int     `yaml:"default_limit"`
	MaxLimit          int     `yaml:"max_limit"`
	BatchMinItems     int     `yaml:"batch_min_items"`
	BatchMaxItems     int     `yaml:"batch_max_items"`
	ItemTimeoutSeconds int    `yaml:"item_timeout_seconds"`
	MaxWorkers        int     `yaml:"max_workers"`
}

// Config is the fully-resolved set of defaults loaded at startup.
type Config struct {
	Similarity Similarity `yaml:"similarity"`
	Weights    Weights    `yaml:"weights"`
	Search     Search     `yaml:"search"`
}

// Load reads and parses the YAML configuration file at path. The fields
// listed in validate must be present and positive; other fields that
// are absent read as zero or false. There is no fallback to built-in
// defaults. A missing file, unparseable YAML, or a missing/invalid
// validated field is a fatal error the caller should surface at
// startup, not paper over.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	type check struct {
		name string
		ok   bool
	}
	checks := []check{
		{"similarity.max_prefix", cfg.Similarity.MaxPrefix > 0},
		{"similarity.token_match_threshold", cfg.Similarity.TokenMatchThreshold > 0},
		{"weights.name_comparison", cfg.Weights.NameComparison > 0},
		{"weights.exact_match_threshold", cfg.Weights.ExactMatchThreshold > 0},
		{"search.max_limit", cfg.Search.MaxLimit > 0},
		{"search.batch_max_items", cfg.Search.BatchMaxItems > 0},
		{"search.item_timeout_seconds", cfg.Search.ItemTimeoutSeconds > 0},
		{"search.max_workers", cfg.Search.MaxWorkers > 0},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("missing or invalid required field %q", c.name)
		}
	}
	return nil
}

// SimilarityWeights adapts the resolved config into the similarity
// package's Weights type.
func (c *Config) SimilarityWeights() similarity.Weights {
	return similarity.Weights{
		PrefixWeight: c.Similarity.PrefixWeight,
		MaxPrefix:    c.Similarity.MaxPrefix,
	}
}

// TokenWeights adapts the resolved config into the similarity package's
// TokenWeights type.
func (c *Config) TokenWeights() similarity.TokenWeights {
	return similarity.TokenWeights{
		Jaro:                      c.SimilarityWeights(),
		LengthDiffPenaltyPerToken: c.Similarity.LengthDiffPenaltyPerToken,
		UnmatchedTokenPenalty:     c.Similarity.UnmatchedTokenPenalty,
		MatchThreshold:            c.Similarity.TokenMatchThreshold,
	}
}

// Resolver serves the current Config to every package that needs
// tunables, guarded for concurrent reload. Reload is intended for
// operators pushing a revised weights file without a restart; search
// requests already in flight keep using the Config pointer they read at
// the start of the request.
type Resolver struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewResolver wraps an already-loaded Config.
func NewResolver(cfg *Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Current returns the currently active configuration.
func (r *Resolver) Current() *Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Reload re-reads the configuration file from path and swaps it in
// atomically. The previous configuration remains active if the reload
// fails validation or parsing.
func (r *Resolver) Reload(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
	return nil
}

// Override is the per-request config_override object (§4.7, §6): every
// field is a nullable pointer to a section so a caller can patch just
// the parts it cares about and leave the rest at the resolved default.
type Override struct {
	Similarity *SimilarityOverride `json:"similarity,omitempty"`
	Weights    *WeightsOverride    `json:"weights,omitempty"`
	Search     *SearchOverride     `json:"search,omitempty"`
}

// SimilarityOverride patches Similarity field-wise: a nil pointer keeps
// the default; a non-nil pointer replaces exactly that field.
type SimilarityOverride struct {
	PrefixWeight              *float64 `json:"prefixWeight,omitempty"`
	MaxPrefix                 *int     `json:"maxPrefix,omitempty"`
	LengthDiffPenaltyPerToken *float64 `json:"lengthDiffPenaltyPerToken,omitempty"`
	UnmatchedTokenPenalty     *float64 `json:"unmatchedTokenPenalty,omitempty"`
	TokenMatchThreshold       *float64 `json:"tokenMatchThreshold,omitempty"`
	PhoneticFilteringDisabled *bool    `json:"phoneticFilteringDisabled,omitempty"`
}

// WeightsOverride patches Weights field-wise.
type WeightsOverride struct {
	NameComparison    *float64 `json:"nameComparison,omitempty"`
	AltNameComparison *float64 `json:"altNameComparison,omitempty"`
	GovIDComparison   *float64 `json:"govIdComparison,omitempty"`
	CryptoComparison  *float64 `json:"cryptoComparison,omitempty"`
	ContactComparison *float64 `json:"contactComparison,omitempty"`
	AddressComparison *float64 `json:"addressComparison,omitempty"`
	DateComparison    *float64 `json:"dateComparison,omitempty"`

	NameEnabled    *bool `json:"nameEnabled,omitempty"`
	AltNameEnabled *bool `json:"altNameEnabled,omitempty"`
	GovIDEnabled   *bool `json:"govIdEnabled,omitempty"`
	CryptoEnabled  *bool `json:"cryptoEnabled,omitempty"`
	ContactEnabled *bool `json:"contactEnabled,omitempty"`
	AddressEnabled *bool `json:"addressEnabled,omitempty"`
	DateEnabled    *bool `json:"dateEnabled,omitempty"`

	ExactMatchThreshold *float64 `json:"exactMatchThreshold,omitempty"`
}

// SearchOverride patches Search field-wise.
type SearchOverride struct {
	MinScoreThreshold *float64 `json:"minScoreThreshold,omitempty"`
	DefaultLimit      *int     `json:"defaultLimit,omitempty"`
}

// Resolve applies a per-request Override on top of the resolver's
// current Config, field-wise: a non-nil override field replaces the
// default, a nil field leaves it untouched. Resolve never mutates the
// shared default Config — it returns a new value the caller passes by
// value into the Scorer, so one request's override can never leak into
// another's.
func (r *Resolver) Resolve(o *Override) *Config {
	cfg := *r.Current()
	if o == nil {
		return &cfg
	}
	if s := o.Similarity; s != nil {
		if s.PrefixWeight != nil {
			cfg.Similarity.PrefixWeight = *s.PrefixWeight
		}
		if s.MaxPrefix != nil {
			cfg.Similarity.MaxPrefix = *s.MaxPrefix
		}
		if s.LengthDiffPenaltyPerToken != nil {
			cfg.Similarity.LengthDiffPenaltyPerToken = *s.LengthDiffPenaltyPerToken
		}
		if s.UnmatchedTokenPenalty != nil {
			cfg.Similarity.UnmatchedTokenPenalty = *s.UnmatchedTokenPenalty
		}
		if s.TokenMatchThreshold != nil {
			cfg.Similarity.TokenMatchThreshold = *s.TokenMatchThreshold
		}
		if s.PhoneticFilteringDisabled != nil {
			cfg.Similarity.PhoneticFilteringDisabled = *s.PhoneticFilteringDisabled
		}
	}
	if w := o.Weights; w != nil {
		if w.NameComparison != nil {
			cfg.Weights.NameComparison = *w.NameComparison
		}
		if w.AltNameComparison != nil {
			cfg.Weights.AltNameComparison = *w.AltNameComparison
		}
		if w.GovIDComparison != nil {
			cfg.Weights.GovIDComparison = *w.GovIDComparison
		}
		if w.CryptoComparison != nil {
			cfg.Weights.CryptoComparison = *w.CryptoComparison
		}
		if w.ContactComparison != nil {
			cfg.Weights.ContactComparison = *w.ContactComparison
		}
		if w.AddressComparison != nil {
			cfg.Weights.AddressComparison = *w.AddressComparison
		}
		if w.DateComparison != nil {
			cfg.Weights.DateComparison = *w.DateComparison
		}
		if w.NameEnabled != nil {
			cfg.Weights.NameEnabled = *w.NameEnabled
		}
		if w.AltNameEnabled != nil {
			cfg.Weights.AltNameEnabled = *w.AltNameEnabled
		}
		if w.GovIDEnabled != nil {
			cfg.Weights.GovIDEnabled = *w.GovIDEnabled
		}
		if w.CryptoEnabled != nil {
			cfg.Weights.CryptoEnabled = *w.CryptoEnabled
		}
		if w.ContactEnabled != nil {
			cfg.Weights.ContactEnabled = *w.ContactEnabled
		}
		if w.AddressEnabled != nil {
			cfg.Weights.AddressEnabled = *w.AddressEnabled
		}
		if w.DateEnabled != nil {
			cfg.Weights.DateEnabled = *w.DateEnabled
		}
		if w.ExactMatchThreshold != nil {
			cfg.Weights.ExactMatchThreshold = *w.ExactMatchThreshold
		}
	}
	if sr := o.Search; sr != nil {
		if sr.MinScoreThreshold != nil {
			cfg.Search.MinScoreThreshold = *sr.MinScoreThreshold
		}
		if sr.DefaultLimit != nil {
			cfg.Search.DefaultLimit = *sr.DefaultLimit
		}
	}
	return &cfg
}
