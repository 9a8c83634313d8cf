package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		t         time.Time
		startDay  time.Weekday
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-week, sunday start",
			t:         time.Date(2026, 7, 30, 14, 0, 0, 0, time.UTC), // Thursday
			startDay:  time.Sunday,
			wantStart: time.Date(2026, 7, 26, 0, 0, 0, 0, time.UTC), // Sunday
			wantEnd:   time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "on the start day itself",
			t:         time.Date(2026, 7, 26, 0, 0, 0, 0, time.UTC),
			startDay:  time.Sunday,
			wantStart: time.Date(2026, 7, 26, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday start day",
			t:         time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), // Thursday
			startDay:  time.Monday,
			wantStart: time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC), // Monday
			wantEnd:   time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := WeekBounds(tt.t, tt.startDay)
			assert.True(t, b.Start.Equal(tt.wantStart), "start: got %v want %v", b.Start, tt.wantStart)
			assert.True(t, b.End.Equal(tt.wantEnd), "end: got %v want %v", b.End, tt.wantEnd)
			assert.Equal(t, 7, b.DaysTotal())
		})
	}
}

func TestMonthBounds(t *testing.T) {
	b := MonthBounds(time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC))
	assert.True(t, b.Start.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.End.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, b.DaysTotal())
}

func TestYearBounds(t *testing.T) {
	b := YearBounds(time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC))
	assert.True(t, b.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.End.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRollingWindow(t *testing.T) {
	now := time.Date(2026, 7, 30, 12, 30, 0, 0, time.UTC)
	b := RollingWindow(now, 30)
	assert.Equal(t, 30, b.DaysTotal())
	assert.True(t, b.End.Equal(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)))
}

func TestBounds_DaysElapsed(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		now  time.Time
		want int
	}{
		{
			name: "midway through month",
			b:    MonthBounds(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
			now:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			want: 10,
		},
		{
			name: "now before window start clamps to 1",
			b:    MonthBounds(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
			now:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "now after window end clamps to total",
			b:    MonthBounds(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
			now:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 31,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.DaysElapsed(tt.now))
		})
	}
}

func TestBoundsForPeriod(t *testing.T) {
	at := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)

	daily := BoundsForPeriod(at, "daily", time.Sunday)
	assert.Equal(t, 1, daily.DaysTotal())

	weekly := BoundsForPeriod(at, "weekly", time.Sunday)
	assert.Equal(t, 7, weekly.DaysTotal())

	monthly := BoundsForPeriod(at, "monthly", time.Sunday)
	assert.True(t, monthly.Start.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))

	yearly := BoundsForPeriod(at, "yearly", time.Sunday)
	assert.True(t, yearly.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	fallback := BoundsForPeriod(at, "custom", time.Sunday)
	assert.Equal(t, monthly, fallback)
}

func TestPreviousMonths(t *testing.T) {
	at := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	months := PreviousMonths(at, 3)
	assert.Len(t, months, 3)
	assert.True(t, months[0].Start.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, months[2].Start.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, months[2].End.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
}
