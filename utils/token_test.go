package utils

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBillNumberFormat(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^BILL-\d{13}-[A-Z0-9]{4}$`)

	for i := 0; i < 100; i++ {
		number, err := GenerateBillNumber(now)
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
		assert.True(t, strings.HasPrefix(number, fmt.Sprintf("BILL-%d-", now.UnixMilli())))
	}
}

func TestGenerateAlnumSuffix(t *testing.T) {
	suffix, err := GenerateAlnumSuffix(4)
	require.NoError(t, err)
	assert.Len(t, suffix, 4)
	for _, ch := range suffix {
		assert.Contains(t, suffixCharset, string(ch))
	}

	_, err = GenerateAlnumSuffix(0)
	assert.Error(t, err)
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOTELOPS_TEST_KEY", "set")
	assert.Equal(t, "set", EnvOrDefault("HOTELOPS_TEST_KEY", "fallback"))

	t.Setenv("HOTELOPS_TEST_KEY", "  ")
	assert.Equal(t, "fallback", EnvOrDefault("HOTELOPS_TEST_KEY", "fallback"))
}
