package config

import (
	"reflect"
	"testing"
)

func TestHasLLMCredential(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"your_api_key_here", false},
		{"your_actual_openai_api_key_here", false},
		{"sk-live-abc123", true},
	}
	for _, tc := range cases {
		cfg := Config{OpenAIAPIKey: tc.key}
		if got := cfg.HasLLMCredential(); got != tc.want {
			t.Errorf("HasLLMCredential(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"dev":        "dev",
		"":           "dev",
		"nonsense":   "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" http://localhost:3000 , https://app.example.com ,, ")
	want := []string{"http://localhost:3000", "https://app.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitAndTrim = %v, want %v", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port == "" || cfg.Env == "" || cfg.CatalogPath == "" {
		t.Errorf("defaults must fill required fields: %+v", cfg)
	}
}
