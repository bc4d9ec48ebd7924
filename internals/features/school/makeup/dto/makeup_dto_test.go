package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaveRequestNormalize(t *testing.T) {
	r := LeaveRequest{Reason: "  anak sakit demam  ", Type: " SICK "}
	r.Normalize()
	assert.Equal(t, "anak sakit demam", r.Reason)
	assert.Equal(t, "sick", r.Type)
}

func TestScheduleMakeupRequestParse(t *testing.T) {
	r := ScheduleMakeupRequest{
		MakeupDate:      "2026-04-02",
		MakeupStartTime: "14:30",
		MakeupEndTime:   "16:00",
	}
	date, start, end, err := r.Parse()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, "14:30:00", start.Format("15:04:05"))
	assert.Equal(t, "16:00:00", end.Format("15:04:05"))

	r.MakeupDate = "02-04-2026"
	_, _, _, err = r.Parse()
	assert.Error(t, err)

	r.MakeupDate = "2026-04-02"
	r.MakeupStartTime = "not-a-time"
	_, _, _, err = r.Parse()
	assert.Error(t, err)
}
