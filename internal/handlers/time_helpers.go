package handlers

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(),
	)
}
