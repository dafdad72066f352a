package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	input := `
# storage sizes in MB
storage.basic.max.size = 10\
    0
storage.premium.max.size: 1000
! legacy comment
subscription.level.basic=basic
subscription.level.premium premium
storage.unlimited.max.size = ${storage.premium.max.size}
`
	props, err := ParseProperties(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"storage.basic.max.size":     "100",
		"storage.premium.max.size":   "1000",
		"subscription.level.basic":   "basic",
		"subscription.level.premium": "premium",
		"storage.unlimited.max.size": "1000",
	}, props)

	_, err = ParseProperties(strings.NewReader("a=${b}\nb=${a}\n"))
	assert.Error(t, err, "circular references are rejected")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "STORAGE_BASIC_MAX_SIZE", EnvName("storage.basic.max.size"))
	assert.Equal(t, "SUBSCRIPTION_LEVEL_UNLIMITED", EnvName("subscription.level.unlimited"))
}

func TestQuotaOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quota.properties")
	require.NoError(t, os.WriteFile(path, []byte("storage.basic.max.size=100\nsubscription.level.basic=basic\nunrelated=1\n"), 0o600))

	env := map[string]string{
		"ROSTER_QUOTA_FILE":      path,
		"STORAGE_BASIC_MAX_SIZE": "250",
	}
	opts, err := quotaOptions(func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, "250", opts["storage.basic.max.size"], "environment overrides the file")
	assert.Equal(t, "basic", opts["subscription.level.basic"])
	assert.NotContains(t, opts, "unrelated")
	assert.NotContains(t, opts, "storage.premium.max.size")
}

func TestQuotaOptions_MissingFile(t *testing.T) {
	_, err := quotaOptions(func(k string) string {
		if k == "ROSTER_QUOTA_FILE" {
			return filepath.Join(t.TempDir(), "absent.properties")
		}
		return ""
	})
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitList(" a:9092, ,b:9092 "))
	assert.Nil(t, splitList(""))
}
