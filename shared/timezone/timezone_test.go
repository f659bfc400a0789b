package timezone_test

import (
	"spa/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	require.NoError(t, timezone.SetLocation("Asia/Makassar"))
	assert.Equal(t, "Asia/Makassar", timezone.GetLocation().String())

	// 09:00 UTC is 17:00 in Makassar.
	instant := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-15 17:00", timezone.Format(instant, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-11-15 17:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))

	assert.Error(t, timezone.SetLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Makassar", timezone.GetLocation().String(), "a bad name keeps the previous zone")
}

func TestNow(t *testing.T) {
	require.NoError(t, timezone.SetLocation("UTC"))

	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, time.UTC.String(), now.Location().String())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := timezone.Parse(time.DateOnly, "15/11/2025")

	assert.Error(t, err)
}
