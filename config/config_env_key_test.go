package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"cookieName": "session",
			"maxAge":     "168h",
		},
		"storage": map[string]any{
			"autoMigrate": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_MAXAGE", want: "session.maxAge"},
		{envKey: "STORAGE_AUTOMIGRATE", want: "storage.autoMigrate"},
		{envKey: "AUTH_SCRYPT_N", want: "auth.scrypt.n"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
