package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegmish/quickmeet/pkg/models"
)

func TestComputeSchedule(t *testing.T) {
	scheduled, err := ComputeSchedule(models.Event{
		Title:           "Встреча с Петей",
		Date:            "2024-06-11",
		Time:            "19:00",
		Description:     "Встреча с Петей",
		DurationMinutes: 60,
	}, "Europe/Berlin")
	require.NoError(t, err)
	require.Equal(t, "2024-06-11 19:00", scheduled.Start.Format(datetimeLayout))
	require.Equal(t, "2024-06-11 20:00", scheduled.End.Format(datetimeLayout))
	require.Equal(t, "Europe/Berlin", scheduled.TimeZone)
	require.True(t, scheduled.End.After(scheduled.Start))
}

func TestComputeScheduleDurationExact(t *testing.T) {
	for _, minutes := range []int{1, 15, 90, 24 * 60} {
		scheduled, err := ComputeSchedule(models.Event{
			Title:           "x",
			Date:            "2024-02-28",
			Time:            "23:30",
			DurationMinutes: minutes,
		}, "UTC")
		require.NoError(t, err)
		require.Equal(t, time.Duration(minutes)*time.Minute, scheduled.End.Sub(scheduled.Start))
	}
}

func TestComputeScheduleZeroDuration(t *testing.T) {
	scheduled, err := ComputeSchedule(models.Event{
		Title: "reminder",
		Date:  "2024-06-11",
		Time:  "12:00",
	}, "UTC")
	require.NoError(t, err)
	require.True(t, scheduled.End.Equal(scheduled.Start))
}

func TestComputeScheduleBadDatetime(t *testing.T) {
	tt := []struct {
		name string
		date string
		time string
	}{
		{"bad month and day", "2024-13-40", "10:00"},
		{"bad hour and minute", "2024-06-11", "25:99"},
		{"not a date", "tomorrow", "19:00"},
		{"wrong date layout", "11.06.2024", "19:00"},
		{"wrong time layout", "2024-06-11", "7pm"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeSchedule(models.Event{
				Title: "x", Date: tc.date, Time: tc.time, DurationMinutes: 60,
			}, "UTC")
			require.ErrorIs(t, err, models.ErrBadDatetime)
		})
	}
}

func TestComputeScheduleNegativeDuration(t *testing.T) {
	_, err := ComputeSchedule(models.Event{
		Title: "x", Date: "2024-06-11", Time: "19:00", DurationMinutes: -30,
	}, "UTC")
	require.ErrorIs(t, err, models.ErrBadDatetime)
}
