package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfiles = `[riviera-resorts]
currency = EUR
default_tax_rate_pct = 27.9

[alpine-lodges]
currency = CHF
default_tax_rate_pct = 14.6

[harborview]
currency = USD
`

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent.cfg"))
	assert.Error(t, err)
}

func TestGetProfiles(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t, sampleProfiles))
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"riviera-resorts", "alpine-lodges", "harborview"}, profiles)
}

func TestGetProfile(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t, sampleProfiles))
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "alpine-lodges")
	require.NoError(t, err)
	assert.Equal(t, "alpine-lodges", profile.Name)
	assert.Equal(t, "CHF", profile.Currency)
	assert.InDelta(t, 14.6, profile.DefaultTaxRatePct, 1e-9)
}

func TestGetProfile_DefaultsCurrency(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t, "[bare]\ndefault_tax_rate_pct = 20\n"))
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "bare")
	require.NoError(t, err)
	assert.Equal(t, "EUR", profile.Currency)
	assert.InDelta(t, 20, profile.DefaultTaxRatePct, 1e-9)
}

func TestGetProfile_NotFound(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t, sampleProfiles))
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "ghost")
	assert.ErrorContains(t, err, "not found")
}
