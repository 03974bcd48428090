package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveWeekValidation(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  SaveWeekRequest
	}{
		{"empty", SaveWeekRequest{}},
		{"weekday out of range", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: 7, Open: false},
		}}},
		{"negative weekday", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: -1, Open: false},
		}}},
		{"duplicate weekday", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: 1, Open: false},
			{Weekday: 1, Open: false},
		}}},
		{"open without window", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: 1, Open: true},
		}}},
		{"start after end", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: 1, Open: true, StartTime: "18:00", EndTime: "09:00"},
		}}},
		{"zero-length window", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: 1, Open: true, StartTime: "09:00", EndTime: "09:00"},
		}}},
		{"malformed clock", SaveWeekRequest{Days: []DayHoursInput{
			{Weekday: 1, Open: true, StartTime: "9am", EndTime: "18:00"},
		}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveWeek(ctx, tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAddExceptionRejectsBadDate(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.AddException(context.Background(), AddExceptionRequest{Date: "28/08/2026"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseClock(t *testing.T) {
	_, ok := parseClock("09:00")
	assert.True(t, ok)

	start, _ := parseClock("09:00")
	end, _ := parseClock("18:30")
	assert.True(t, start.Before(end))

	for _, bad := range []string{"", "9", "25:00", "12:60", "ab:cd"} {
		_, ok := parseClock(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
