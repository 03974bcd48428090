package schedule

import (
	"sort"
	"time"

	"lashstudio/internal/domain"
)

// Appointment is the minimal view of a booking the pure scheduling functions
// operate on. Duration is the effective service duration at read time.
type Appointment struct {
	ID       string
	Start    time.Time
	Duration time.Duration
	Status   domain.AppointmentStatus
}

func (a Appointment) end() time.Time { return a.Start.Add(a.Duration) }

type SegmentKind string

const (
	SegmentFree SegmentKind = "free"
	SegmentBusy SegmentKind = "busy"
)

// Segment is one interval of the day timeline, half-open [Start, End).
// Busy segments carry the occupying appointment's id.
type Segment struct {
	Kind          SegmentKind `json:"kind"`
	Start         time.Time   `json:"start"`
	End           time.Time   `json:"end"`
	AppointmentID string      `json:"appointment_id,omitempty"`
}

func (s Segment) Duration() time.Duration { return s.End.Sub(s.Start) }

// BuildTimeline sweeps the day's appointments across the operating window
// [dayStart, dayEnd) and returns the ordered busy/free segments.
//
// Cancelled appointments free their slot entirely. After each busy segment
// the cursor skips an extra buffer of dead time that belongs to no segment.
// Segments shorter than one minute are suppressed. An appointment whose
// buffered span runs past dayEnd still yields its busy segment; the trailing
// free segment is simply skipped. Callers must handle the closed-day case
// themselves: this function assumes the studio is open.
func BuildTimeline(dayStart, dayEnd time.Time, appts []Appointment, buffer time.Duration) []Segment {
	active := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == domain.AppointmentCancelled {
			continue
		}
		active = append(active, a)
	}
	// Stable: simultaneous starts keep input order.
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Start.Before(active[j].Start)
	})

	segments := make([]Segment, 0, 2*len(active)+1)
	cursor := dayStart
	for _, a := range active {
		if gap := a.Start.Sub(cursor); gap >= time.Minute {
			segments = append(segments, Segment{Kind: SegmentFree, Start: cursor, End: a.Start})
		}
		segments = append(segments, Segment{
			Kind:          SegmentBusy,
			Start:         a.Start,
			End:           a.end(),
			AppointmentID: a.ID,
		})
		cursor = a.end().Add(buffer)
	}
	if rest := dayEnd.Sub(cursor); rest >= time.Minute {
		segments = append(segments, Segment{Kind: SegmentFree, Start: cursor, End: dayEnd})
	}
	return segments
}

// SuggestSlots enumerates candidate start times inside the free segments.
// Every returned time fits the full service duration within its segment:
// the walk stops at segment end minus the duration, inclusive.
func SuggestSlots(segments []Segment, serviceDur, step time.Duration) []time.Time {
	slots := make([]time.Time, 0)
	for _, seg := range segments {
		if seg.Kind != SegmentFree || seg.Duration() < serviceDur {
			continue
		}
		limit := seg.End.Add(-serviceDur)
		for t := seg.Start; !t.After(limit); t = t.Add(step) {
			slots = append(slots, t)
		}
	}
	return slots
}

// HasConflict reports whether a candidate booking overlaps any existing
// non-cancelled appointment. The buffer is applied to both sides of the
// comparison, which guarantees at least buffer minutes of separation between
// occupied spans regardless of which booking is the new one. excludeID skips
// the appointment being edited; pass "" for a new booking.
func HasConflict(candidateStart time.Time, candidateDur time.Duration, appts []Appointment, buffer time.Duration, excludeID string) bool {
	candidateEnd := candidateStart.Add(candidateDur + buffer)
	for _, a := range appts {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if a.Status == domain.AppointmentCancelled {
			continue
		}
		existingEnd := a.Start.Add(a.Duration + buffer)
		if candidateStart.Before(existingEnd) && candidateEnd.After(a.Start) {
			return true
		}
	}
	return false
}

// EffectiveDuration converts a service's stored minutes to a duration,
// substituting the fallback when the reference is missing or malformed so
// the timeline stays renderable.
func EffectiveDuration(serviceMinutes int, fallback time.Duration) time.Duration {
	if serviceMinutes <= 0 {
		return fallback
	}
	return time.Duration(serviceMinutes) * time.Minute
}
