package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodParse(t *testing.T) {
	tod, err := Parse("14:30")
	assert.NoError(t, err)
	assert.Equal(t, 14, tod.Hour())
	assert.Equal(t, 30, tod.Minute())

	tod, err = Parse("09:05:30")
	assert.NoError(t, err)
	assert.Equal(t, 30, tod.Second())

	_, err = Parse("25:00")
	assert.Error(t, err)
	_, err = Parse("bukan jam")
	assert.Error(t, err)
}

func TestTodValue(t *testing.T) {
	tod, _ := Parse("08:15")
	v, err := tod.Value()
	assert.NoError(t, err)
	assert.Equal(t, "08:15:00", v)

	var zero Tod
	v, err = zero.Value()
	assert.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestTodScan(t *testing.T) {
	var tod Tod
	assert.NoError(t, tod.Scan("16:45:00"))
	assert.Equal(t, 16, tod.Hour())

	assert.NoError(t, tod.Scan([]byte("07:00")))
	assert.Equal(t, 7, tod.Hour())

	assert.NoError(t, tod.Scan(nil))
	assert.True(t, tod.IsZero())

	assert.Error(t, tod.Scan(12345))
}

func TestTodJSON(t *testing.T) {
	tod, _ := Parse("13:00")
	raw, err := json.Marshal(tod)
	assert.NoError(t, err)
	assert.Equal(t, `"13:00:00"`, string(raw))

	var back Tod
	assert.NoError(t, json.Unmarshal([]byte(`"13:00"`), &back))
	assert.Equal(t, 13, back.Hour())
}

func TestStartEndOfDay(t *testing.T) {
	loc := time.UTC
	at := time.Date(2026, 3, 10, 15, 42, 7, 123, loc)

	start := StartOfDay(at, loc)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)

	end := EndOfDay(at, loc)
	assert.True(t, end.After(at))
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())

	// akhir hari persis sebelum 00:00 hari berikutnya
	assert.Equal(t, time.Nanosecond, start.AddDate(0, 0, 1).Sub(end))
}
