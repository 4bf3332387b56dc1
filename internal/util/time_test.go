package util

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeTimeProvider(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "local timezone", timezone: "Local"},
		{name: "UTC timezone", timezone: "UTC"},
		{name: "valid timezone Europe/Rome", timezone: "Europe/Rome"},
		{name: "empty timezone defaults to Local", timezone: ""},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitializeTimeProvider(tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid timezone")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, GetTimeProvider())
			}
		})
	}
}

func TestTimeProvider_FakeClock(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)

	tp, err := NewTimeProvider("Asia/Tokyo", clock)
	require.NoError(t, err)

	now := tp.Now()
	assert.True(t, now.Equal(start))
	assert.Equal(t, "Asia/Tokyo", now.Location().String())
	assert.Equal(t, 540, tp.OffsetMinutes(now))
	assert.Equal(t, "2024-03-10 21:00", tp.Format(start, "2006-01-02 15:04"))

	clock.Advance(90 * time.Second)
	assert.True(t, tp.Now().Equal(start.Add(90*time.Second)))
}

func TestTimeProvider_SetClock(t *testing.T) {
	tp, err := NewTimeProvider("UTC", nil)
	require.NoError(t, err)

	fake := clockwork.NewFakeClockAt(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	tp.SetClock(fake)
	assert.Equal(t, fake, tp.Clock())
	assert.Equal(t, 2000, tp.Now().Year())
	assert.Equal(t, time.UTC, tp.Location())
}

func TestTimeProvider_Concurrency(t *testing.T) {
	tp, err := NewTimeProvider("UTC", nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = tp.SetTimezone("Europe/London")
			} else {
				_ = tp.Now()
			}
		}(i)
	}
	wg.Wait()
}
