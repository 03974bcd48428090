package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want AppointmentStatus
		ok   bool
	}{
		{"pending", AppointmentPending, true},
		{"confirmed", AppointmentConfirmed, true},
		{"completed", AppointmentCompleted, true},
		{"cancelled", AppointmentCancelled, true},
		{"no_show", AppointmentNoShow, true},
		{"desmarcou", AppointmentPending, false},
		{"Confirmed", AppointmentPending, false},
		{"", AppointmentPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := NormalizeStatus(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
