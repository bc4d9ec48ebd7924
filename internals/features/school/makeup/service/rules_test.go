package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/helpers/dbtime"
)

func TestIsRetroactive(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	tests := []struct {
		name        string
		sessionDate time.Time
		want        bool
	}{
		{"sesi kemarin", time.Date(2026, 3, 9, 0, 0, 0, 0, loc), true},
		{"sesi hari ini", time.Date(2026, 3, 10, 0, 0, 0, 0, loc), true},
		{"sesi hari ini jam lebih malam", time.Date(2026, 3, 10, 19, 0, 0, 0, loc), true},
		{"sesi besok", time.Date(2026, 3, 11, 0, 0, 0, 0, loc), false},
		{"sesi minggu depan", time.Date(2026, 3, 17, 0, 0, 0, 0, loc), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRetroactive(tc.sessionDate, now, loc))
		})
	}
}

func TestIsDuplicateActiveMakeupErr(t *testing.T) {
	assert.False(t, IsDuplicateActiveMakeupErr(nil))
	assert.False(t, IsDuplicateActiveMakeupErr(errors.New("connection refused")))
	assert.False(t, IsDuplicateActiveMakeupErr(errors.New("duplicate key value violates unique constraint \"uq_attendance_schedule_student\"")))

	assert.True(t, IsDuplicateActiveMakeupErr(errors.New("ERROR: duplicate key value violates unique constraint \"uq_makeup_active_per_schedule\" (SQLSTATE 23505)")))
	assert.True(t, IsDuplicateActiveMakeupErr(errors.New("duplicate entry on makeup row")))
}

func TestBuildScheduleMessage(t *testing.T) {
	date := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	start, err := dbtime.Parse("14:30")
	assert.NoError(t, err)
	end, err := dbtime.Parse("16:00")
	assert.NoError(t, err)

	msg := BuildScheduleMessage("Raka", "Coding Dasar A", date, start, end)

	assert.Contains(t, msg, "Raka")
	assert.Contains(t, msg, "Coding Dasar A")
	assert.Contains(t, msg, "02 Apr 2026")
	assert.Contains(t, msg, "14:30 - 16:00")
}

func TestQuotaBreakdown(t *testing.T) {
	q := QuotaBreakdown{ScheduledMakeups: 1, AbsentSessions: 2, Limit: 4}
	assert.Equal(t, int64(3), q.Used())
	assert.False(t, q.Exceeded())

	// pas di limit = habis, request berikutnya ditolak
	q.AbsentSessions = 3
	assert.Equal(t, int64(4), q.Used())
	assert.True(t, q.Exceeded())

	q.ScheduledMakeups = 5
	assert.True(t, q.Exceeded())

	empty := QuotaBreakdown{Limit: 4}
	assert.Equal(t, int64(0), empty.Used())
	assert.False(t, empty.Exceeded())
}
