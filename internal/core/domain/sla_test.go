package domain

import (
	"testing"
	"time"
)

var slaNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestClassifySLA_OpenStatus_Boundaries(t *testing.T) {
	cases := []struct {
		name     string
		deadline time.Time
		want     SLAStatus
	}{
		{"just inside warning window", slaNow.Add(23*time.Hour + 59*time.Minute), SLAWarning},
		{"exactly at threshold", slaNow.Add(24 * time.Hour), SLAWarning},
		{"just outside warning window", slaNow.Add(24*time.Hour + time.Minute), SLAOnTime},
		{"one second past deadline", slaNow.Add(-time.Second), SLAOverdue},
		{"far in the future", slaNow.Add(72 * time.Hour), SLAOnTime},
	}

	for _, tc := range cases {
		sla := ClassifySLA(tc.deadline, StatusInTransit, slaNow, DefaultWarningThreshold)
		if sla.Status != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, sla.Status, tc.want)
		}
	}
}

func TestClassifySLA_RemainingHoursRoundsUp(t *testing.T) {
	sla := ClassifySLA(slaNow.Add(23*time.Hour+59*time.Minute), StatusBooked, slaNow, DefaultWarningThreshold)
	if sla.RemainingHours == nil {
		t.Fatal("expected remaining hours for open shipment before deadline")
	}
	if *sla.RemainingHours != 24 {
		t.Errorf("expected ceil to 24 hours, got %d", *sla.RemainingHours)
	}
}

func TestClassifySLA_OverdueOmitsRemainingHours(t *testing.T) {
	sla := ClassifySLA(slaNow.Add(-2*time.Hour), StatusPickup, slaNow, DefaultWarningThreshold)
	if sla.Status != SLAOverdue {
		t.Fatalf("expected overdue, got %s", sla.Status)
	}
	if sla.RemainingHours != nil {
		t.Error("overdue classification must not carry remaining hours")
	}
}

func TestClassifySLA_ClosedStatus_HistoricalVerdict(t *testing.T) {
	for _, status := range []ShipmentStatus{StatusDelivered, StatusInvoiced, StatusCancelled} {
		onTime := ClassifySLA(slaNow.Add(time.Hour), status, slaNow, DefaultWarningThreshold)
		if onTime.Status != SLAOnTime {
			t.Errorf("%s before deadline: got %s, want on_time", status, onTime.Status)
		}

		overdue := ClassifySLA(slaNow.Add(-time.Hour), status, slaNow, DefaultWarningThreshold)
		if overdue.Status != SLAOverdue {
			t.Errorf("%s past deadline: got %s, want overdue", status, overdue.Status)
		}
		if overdue.RemainingHours != nil {
			t.Errorf("%s past deadline must not carry remaining hours", status)
		}
	}
}

// A closed shipment whose deadline had passed stays overdue no matter how
// much later it is re-classified.
func TestClassifySLA_ClosedOverdueNeverRecovers(t *testing.T) {
	deadline := slaNow.Add(-time.Minute)
	for _, later := range []time.Time{slaNow, slaNow.Add(24 * time.Hour), slaNow.Add(30 * 24 * time.Hour)} {
		sla := ClassifySLA(deadline, StatusDelivered, later, DefaultWarningThreshold)
		if sla.Status != SLAOverdue {
			t.Errorf("re-classification at %v flipped verdict to %s", later, sla.Status)
		}
	}
}

// A closed shipment never escalates to warning; near-deadline closed
// shipments stay on_time.
func TestClassifySLA_ClosedStatus_NoWarning(t *testing.T) {
	sla := ClassifySLA(slaNow.Add(time.Hour), StatusDelivered, slaNow, DefaultWarningThreshold)
	if sla.Status != SLAOnTime {
		t.Errorf("closed shipment inside warning window: got %s, want on_time", sla.Status)
	}
}

func TestClassifySLA_ZeroThresholdFallsBackToDefault(t *testing.T) {
	sla := ClassifySLA(slaNow.Add(12*time.Hour), StatusBooked, slaNow, 0)
	if sla.Status != SLAWarning {
		t.Errorf("expected default 24h threshold to apply, got %s", sla.Status)
	}
}
