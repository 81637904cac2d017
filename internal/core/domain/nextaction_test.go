package domain

import (
	"testing"
	"time"
)

var planNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func planSLA(deadline time.Time) SLA {
	return ClassifySLA(deadline, StatusInTransit, planNow, DefaultWarningThreshold)
}

func TestPlanNextAction_Quoted(t *testing.T) {
	task := PlanNextAction(StatusQuoted, PriorityStandard, planSLA(planNow.Add(72*time.Hour)), planNow)
	if task == nil {
		t.Fatal("expected a next action for quoted")
	}
	if task.Description != "Follow up on quote with customer" {
		t.Errorf("unexpected description: %q", task.Description)
	}
	if task.Priority != PriorityStandard {
		t.Errorf("quoted must keep shipment priority, got %s", task.Priority)
	}
	if task.DueDate == nil || !task.DueDate.Equal(planNow.Add(24*time.Hour)) {
		t.Errorf("expected due +24h, got %v", task.DueDate)
	}
}

func TestPlanNextAction_BookedEscalatesToUrgent(t *testing.T) {
	task := PlanNextAction(StatusBooked, PriorityStandard, planSLA(planNow.Add(72*time.Hour)), planNow)
	if task == nil {
		t.Fatal("expected a next action for booked")
	}
	if task.Priority != PriorityUrgent {
		t.Errorf("booked must escalate to urgent, got %s", task.Priority)
	}
	if task.DueDate == nil || !task.DueDate.Equal(planNow.Add(2*time.Hour)) {
		t.Errorf("expected due +2h, got %v", task.DueDate)
	}
}

func TestPlanNextAction_InTransitDueAtDeadline(t *testing.T) {
	deadline := planNow.Add(30 * time.Hour)
	task := PlanNextAction(StatusInTransit, PriorityCritical, planSLA(deadline), planNow)
	if task == nil {
		t.Fatal("expected a next action for in_transit")
	}
	if task.Description != "Monitor shipment progress" {
		t.Errorf("unexpected description: %q", task.Description)
	}
	if task.Priority != PriorityCritical {
		t.Errorf("in_transit must keep shipment priority, got %s", task.Priority)
	}
	if task.DueDate == nil || !task.DueDate.Equal(deadline) {
		t.Errorf("expected due at shipment deadline %v, got %v", deadline, task.DueDate)
	}
}

func TestPlanNextAction_PassiveStatusesCapAtUrgent(t *testing.T) {
	for _, status := range []ShipmentStatus{StatusPickup, StatusCustoms} {
		task := PlanNextAction(status, PriorityCritical, planSLA(planNow.Add(48*time.Hour)), planNow)
		if task == nil {
			t.Fatalf("expected a next action for %s", status)
		}
		if task.Priority != PriorityUrgent {
			t.Errorf("%s must cap critical at urgent, got %s", status, task.Priority)
		}
	}
}

func TestPlanNextAction_DeliveredAndDocument(t *testing.T) {
	delivered := PlanNextAction(StatusDelivered, PriorityStandard, planSLA(planNow.Add(time.Hour)), planNow)
	if delivered == nil || delivered.Description != "Obtain proof of delivery" {
		t.Fatalf("unexpected delivered action: %+v", delivered)
	}
	if delivered.DueDate == nil || !delivered.DueDate.Equal(planNow.Add(24*time.Hour)) {
		t.Errorf("delivered: expected due +24h, got %v", delivered.DueDate)
	}

	document := PlanNextAction(StatusDocument, PriorityStandard, planSLA(planNow.Add(time.Hour)), planNow)
	if document == nil || document.Description != "Prepare and send invoice" {
		t.Fatalf("unexpected document action: %+v", document)
	}
	if document.DueDate == nil || !document.DueDate.Equal(planNow.Add(48*time.Hour)) {
		t.Errorf("document: expected due +48h, got %v", document.DueDate)
	}
}

func TestPlanNextAction_TerminalStatusesHaveNone(t *testing.T) {
	for _, status := range []ShipmentStatus{StatusInvoiced, StatusCancelled} {
		if task := PlanNextAction(status, PriorityUrgent, planSLA(planNow.Add(time.Hour)), planNow); task != nil {
			t.Errorf("%s must have no next action, got %+v", status, task)
		}
	}
}
