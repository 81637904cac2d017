package domain

import (
	"math"
	"time"
)

// DefaultWarningThreshold is how close to the deadline an open shipment must
// be before its SLA state flips to warning.
const DefaultWarningThreshold = 24 * time.Hour

// SLAStatus is the deadline-derived urgency classification of a shipment.
type SLAStatus string

const (
	SLAOnTime  SLAStatus = "on_time"
	SLAWarning SLAStatus = "warning"
	SLAOverdue SLAStatus = "overdue"
)

// SLA is the classification snapshot stored on a shipment. It is recomputed
// on every write and refreshed on every read; the persisted copy is only a
// cache of the last evaluation.
type SLA struct {
	Deadline       time.Time `json:"deadline" bson:"deadline"`
	Status         SLAStatus `json:"status" bson:"status"`
	RemainingHours *int      `json:"remaining_hours,omitempty" bson:"remaining_hours,omitempty"`
}

// ClassifySLA evaluates the SLA rules for a shipment deadline at the given
// instant. Closed statuses (delivered, invoiced, cancelled) keep a historical
// verdict: on_time iff the deadline had not passed, with no remaining hours
// once overdue. Open statuses are overdue past the deadline, warning within
// the threshold, on_time otherwise. Remaining hours are rounded up.
//
// The current time is an explicit parameter so the classifier stays pure.
func ClassifySLA(deadline time.Time, status ShipmentStatus, now time.Time, warningThreshold time.Duration) SLA {
	if warningThreshold <= 0 {
		warningThreshold = DefaultWarningThreshold
	}

	sla := SLA{Deadline: deadline}

	if status.IsClosed() {
		if now.After(deadline) {
			sla.Status = SLAOverdue
			return sla
		}
		sla.Status = SLAOnTime
		sla.RemainingHours = remainingHours(deadline, now)
		return sla
	}

	if now.After(deadline) {
		sla.Status = SLAOverdue
		return sla
	}

	sla.RemainingHours = remainingHours(deadline, now)
	if deadline.Sub(now) <= warningThreshold {
		sla.Status = SLAWarning
	} else {
		sla.Status = SLAOnTime
	}
	return sla
}

// remainingHours rounds the time left up to whole hours.
func remainingHours(deadline, now time.Time) *int {
	h := int(math.Ceil(deadline.Sub(now).Hours()))
	return &h
}
