package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegmish/quickmeet/pkg/models"
)

func TestConfirmation(t *testing.T) {
	start := time.Date(2024, 6, 11, 19, 0, 0, 0, time.UTC)
	msg := confirmation(models.ScheduledEvent{
		Title:    "Встреча с Петей",
		Start:    start,
		End:      start.Add(time.Hour),
		TimeZone: "Europe/Berlin",
	})
	require.Contains(t, msg, "Встреча с Петей")
	require.Contains(t, msg, "11.06.2024")
	require.Contains(t, msg, "19:00")
}

func TestFailureReply(t *testing.T) {
	require.Equal(t, msgCannotParse, failureReply(models.FailMalformedResponse))
	require.Equal(t, msgCannotParse, failureReply(models.FailMissingField))
	require.Equal(t, msgCannotParse, failureReply(models.FailBadDatetime))
	require.Equal(t, msgCannotParse, failureReply(models.FailServiceError))
	require.Equal(t, msgCalendarError, failureReply(models.FailAPIError))
	require.Equal(t, msgCalendarError, failureReply(models.FailUnknown))
}
