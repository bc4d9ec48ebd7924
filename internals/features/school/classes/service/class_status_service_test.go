package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	classModel "sekolahku_backend/internals/features/school/classes/model"
)

func TestShouldStart(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		name      string
		status    string
		startDate time.Time
		want      bool
	}{
		{"published, mulai hari ini", classModel.ClassStatusPublished, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), true},
		{"published, mulai kemarin", classModel.ClassStatusPublished, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), true},
		{"published, mulai besok", classModel.ClassStatusPublished, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), false},
		{"draft tidak pernah start otomatis", classModel.ClassStatusDraft, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), false},
		{"started tidak diproses ulang", classModel.ClassStatusStarted, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), false},
		{"cancelled tidak bangkit lagi", classModel.ClassStatusCancelled, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldStart(tc.status, tc.startDate, now, loc))
		})
	}
}

func TestShouldComplete(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		name           string
		status         string
		endDate        time.Time
		futureSessions int64
		want           bool
	}{
		{"started, end_date kemarin, tanpa sesi tersisa", classModel.ClassStatusStarted, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), 0, true},
		{"published juga bisa langsung completed", classModel.ClassStatusPublished, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), 0, true},
		{"end_date hari ini belum lewat (tunggu akhir hari)", classModel.ClassStatusStarted, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), 0, false},
		{"masih ada sesi reschedule di depan", classModel.ClassStatusStarted, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), 2, false},
		{"completed tidak diproses lagi", classModel.ClassStatusCompleted, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), 0, false},
		{"cancelled di luar mesin otomatis", classModel.ClassStatusCancelled, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldComplete(tc.status, tc.endDate, now, tc.futureSessions, loc))
		})
	}
}

// Transisi tidak pernah mundur: untuk status apapun yang sudah melewati
// suatu fase, predikat fase sebelumnya selalu false.
func TestStatusTransitionsMonotonic(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	past := time.Date(2026, 1, 1, 0, 0, 0, 0, loc)

	for _, status := range []string{
		classModel.ClassStatusStarted,
		classModel.ClassStatusCompleted,
		classModel.ClassStatusCancelled,
	} {
		assert.False(t, ShouldStart(status, past, now, loc), "status %s tidak boleh start lagi", status)
	}
	for _, status := range []string{
		classModel.ClassStatusDraft,
		classModel.ClassStatusCompleted,
		classModel.ClassStatusCancelled,
	} {
		assert.False(t, ShouldComplete(status, past, now, 0, loc), "status %s tidak boleh complete otomatis", status)
	}
}
