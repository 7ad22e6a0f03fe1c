package util

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "bat-erdene-chef", Slugify("Bat Erdene  Chef!"))
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"bat": true, "bat-1": true}
	got, err := UniqueSlug(context.Background(), "bat", func(_ context.Context, s string) (bool, error) {
		return taken[s], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "bat-2", got)
}

func TestUniqueSlug_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := UniqueSlug(context.Background(), "bat", func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRoundToWholeAmount(t *testing.T) {
	assert.Equal(t, int64(15000), RoundToWholeAmount(14999.5))
	assert.Equal(t, int64(14999), RoundToWholeAmount(14999.4))
	assert.Equal(t, int64(0), RoundToWholeAmount(0.4))
}
