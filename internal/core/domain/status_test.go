package domain

import "testing"

// allowedPairs mirrors the transition table; every pair outside it must be
// rejected.
var allowedPairs = map[ShipmentStatus][]ShipmentStatus{
	StatusQuoted:    {StatusBooked, StatusCancelled},
	StatusBooked:    {StatusPickup, StatusCancelled},
	StatusPickup:    {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusCustoms, StatusDelivered, StatusCancelled},
	StatusCustoms:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {StatusDocument},
	StatusDocument:  {StatusInvoiced},
}

func isAllowed(from, to ShipmentStatus) bool {
	for _, t := range allowedPairs[from] {
		if t == to {
			return true
		}
	}
	return false
}

func TestCanTransitionTo_ExhaustivePairs(t *testing.T) {
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := isAllowed(from, to)
			got := from.CanTransitionTo(to)
			if got != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionTo_SelfTransitionRejected(t *testing.T) {
	for _, s := range AllStatuses {
		if s.CanTransitionTo(s) {
			t.Errorf("%s -> %s must be rejected", s, s)
		}
	}
}

func TestTerminalStatuses_NoOutgoingEdges(t *testing.T) {
	for _, terminal := range []ShipmentStatus{StatusInvoiced, StatusCancelled} {
		if !terminal.IsTerminal() {
			t.Errorf("%s must be terminal", terminal)
		}
		for _, to := range AllStatuses {
			if terminal.CanTransitionTo(to) {
				t.Errorf("terminal %s must not transition to %s", terminal, to)
			}
		}
	}
}

func TestIsClosed(t *testing.T) {
	closed := map[ShipmentStatus]bool{
		StatusDelivered: true,
		StatusInvoiced:  true,
		StatusCancelled: true,
	}
	for _, s := range AllStatuses {
		if s.IsClosed() != closed[s] {
			t.Errorf("%s: IsClosed() = %v, want %v", s, s.IsClosed(), closed[s])
		}
	}
}

func TestIsDeletable(t *testing.T) {
	for _, s := range AllStatuses {
		want := s == StatusQuoted || s == StatusCancelled
		if s.IsDeletable() != want {
			t.Errorf("%s: IsDeletable() = %v, want %v", s, s.IsDeletable(), want)
		}
	}
}

func TestIsValid_RejectsUnknown(t *testing.T) {
	if ShipmentStatus("teleported").IsValid() {
		t.Error("unknown status must not be valid")
	}
	for _, s := range AllStatuses {
		if !s.IsValid() {
			t.Errorf("%s must be valid", s)
		}
	}
}
