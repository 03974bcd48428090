package schedule

import (
	"testing"
	"time"

	"lashstudio/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testDay = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestBuildTimelineMidDayBooking(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(10, 0), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}

	segments := BuildTimeline(at(9, 0), at(18, 0), appts, 15*time.Minute)

	assert.Len(t, segments, 3)

	assert.Equal(t, SegmentFree, segments[0].Kind)
	assert.Equal(t, at(9, 0), segments[0].Start)
	assert.Equal(t, at(10, 0), segments[0].End)

	assert.Equal(t, SegmentBusy, segments[1].Kind)
	assert.Equal(t, at(10, 0), segments[1].Start)
	assert.Equal(t, at(11, 0), segments[1].End)
	assert.Equal(t, "a1", segments[1].AppointmentID)

	// The buffer after the busy segment belongs to neither side.
	assert.Equal(t, SegmentFree, segments[2].Kind)
	assert.Equal(t, at(11, 15), segments[2].Start)
	assert.Equal(t, at(18, 0), segments[2].End)
}

func TestBuildTimelineCancelledFreesTheDay(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(10, 0), Duration: time.Hour, Status: domain.AppointmentCancelled},
	}

	segments := BuildTimeline(at(9, 0), at(18, 0), appts, 15*time.Minute)

	assert.Len(t, segments, 1)
	assert.Equal(t, SegmentFree, segments[0].Kind)
	assert.Equal(t, at(9, 0), segments[0].Start)
	assert.Equal(t, at(18, 0), segments[0].End)
}

func TestBuildTimelineEmptyDay(t *testing.T) {
	segments := BuildTimeline(at(9, 0), at(18, 0), nil, 15*time.Minute)

	assert.Len(t, segments, 1)
	assert.Equal(t, SegmentFree, segments[0].Kind)
}

func TestBuildTimelineBusyOverflowsPastClose(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(17, 30), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}

	segments := BuildTimeline(at(9, 0), at(18, 0), appts, 15*time.Minute)

	assert.Len(t, segments, 2)
	assert.Equal(t, SegmentBusy, segments[1].Kind)
	assert.Equal(t, at(18, 30), segments[1].End)
}

func TestBuildTimelineSuppressesSubMinuteGaps(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(9, 0), Duration: time.Hour, Status: domain.AppointmentConfirmed},
		{ID: "a2", Start: at(10, 15).Add(30 * time.Second), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}

	segments := BuildTimeline(at(9, 0), at(18, 0), appts, 15*time.Minute)

	for _, seg := range segments[:len(segments)-1] {
		assert.Equal(t, SegmentBusy, seg.Kind, "sub-minute gap must not surface as free")
	}
}

func TestBuildTimelineBackToBackWithBuffer(t *testing.T) {
	appts := []Appointment{
		{ID: "a2", Start: at(11, 15), Duration: 45 * time.Minute, Status: domain.AppointmentPending},
		{ID: "a1", Start: at(10, 0), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}

	segments := BuildTimeline(at(9, 0), at(18, 0), appts, 15*time.Minute)

	// Sorted by start despite input order; no free segment between them
	// because a2 starts exactly at a1's buffered end.
	assert.Len(t, segments, 4)
	assert.Equal(t, "a1", segments[1].AppointmentID)
	assert.Equal(t, "a2", segments[2].AppointmentID)
	assert.Equal(t, at(12, 15), segments[3].Start)
}

func TestBuildTimelineSegmentsAreOrderedAndDisjoint(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(9, 30), Duration: 90 * time.Minute, Status: domain.AppointmentConfirmed},
		{ID: "a2", Start: at(13, 0), Duration: 2 * time.Hour, Status: domain.AppointmentPending},
		{ID: "a3", Start: at(16, 0), Duration: 30 * time.Minute, Status: domain.AppointmentCompleted},
	}

	segments := BuildTimeline(at(9, 0), at(18, 0), appts, 15*time.Minute)

	for i := 1; i < len(segments); i++ {
		assert.False(t, segments[i].Start.Before(segments[i-1].End),
			"segment %d starts before segment %d ends", i, i-1)
	}
	for _, seg := range segments {
		assert.True(t, seg.End.After(seg.Start))
	}
}

func TestSuggestSlotsExactFit(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(10, 0), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}
	segments := BuildTimeline(at(9, 0), at(12, 0), appts, 15*time.Minute)

	// Trailing segment is 11:15–12:00, exactly 45 minutes: its start is the
	// only valid slot there.
	slots := SuggestSlots(segments, 45*time.Minute, 15*time.Minute)

	assert.Equal(t, []time.Time{at(9, 0), at(9, 15), at(11, 15)}, slots)
}

func TestSuggestSlotsSkipsShortSegments(t *testing.T) {
	segments := []Segment{
		{Kind: SegmentFree, Start: at(9, 0), End: at(9, 30)},
	}

	slots := SuggestSlots(segments, time.Hour, 15*time.Minute)
	assert.Empty(t, slots)
}

func TestSuggestSlotsIgnoresBusySegments(t *testing.T) {
	segments := []Segment{
		{Kind: SegmentBusy, Start: at(9, 0), End: at(12, 0), AppointmentID: "a1"},
	}

	slots := SuggestSlots(segments, time.Hour, 15*time.Minute)
	assert.Empty(t, slots)
}

func TestHasConflictBufferIsSymmetric(t *testing.T) {
	existing := []Appointment{
		{ID: "a1", Start: at(10, 0), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}
	buffer := 15 * time.Minute

	cases := []struct {
		name     string
		start    time.Time
		dur      time.Duration
		conflict bool
	}{
		{"inside existing", at(10, 30), time.Hour, true},
		{"within trailing buffer", at(11, 10), time.Hour, true},
		{"at buffered end", at(11, 15), time.Hour, false},
		{"ends within leading buffer", at(8, 50), time.Hour, true},
		{"ends at buffered distance before", at(8, 45), time.Hour, false},
		{"far away", at(14, 0), time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HasConflict(tc.start, tc.dur, existing, buffer, "")
			assert.Equal(t, tc.conflict, got)
		})
	}
}

func TestHasConflictSkipsCancelledAndExcluded(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", Start: at(10, 0), Duration: time.Hour, Status: domain.AppointmentCancelled},
		{ID: "a2", Start: at(13, 0), Duration: time.Hour, Status: domain.AppointmentConfirmed},
	}
	buffer := 15 * time.Minute

	assert.False(t, HasConflict(at(10, 0), time.Hour, appts, buffer, ""))
	assert.True(t, HasConflict(at(13, 0), time.Hour, appts, buffer, ""))
	assert.False(t, HasConflict(at(13, 0), time.Hour, appts, buffer, "a2"))
}

func TestEffectiveDuration(t *testing.T) {
	fallback := time.Hour

	assert.Equal(t, 90*time.Minute, EffectiveDuration(90, fallback))
	assert.Equal(t, fallback, EffectiveDuration(0, fallback))
	assert.Equal(t, fallback, EffectiveDuration(-5, fallback))
}
