package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoder": map[string]any{
			"baseUrl":           "https://nominatim.openstreetmap.org",
			"requestsPerSecond": 1,
		},
		"ledger": map[string]any{
			"templatePath": "",
			"atomicBatch":  false,
		},
		"composer": map[string]any{
			"parallelLegs": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODER_BASEURL", want: "geocoder.baseUrl"},
		{envKey: "GEOCODER_REQUESTSPERSECOND", want: "geocoder.requestsPerSecond"},
		{envKey: "LEDGER_TEMPLATEPATH", want: "ledger.templatePath"},
		{envKey: "COMPOSER_PARALLELLEGS", want: "composer.parallelLegs"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
