package domain

import "time"

// nextActionRule describes the derived follow-up for one open status.
type nextActionRule struct {
	description string
	dueAfter    time.Duration // 0 means "due at the shipment deadline"
	dueDeadline bool
	escalate    bool // force urgent regardless of shipment priority
	capUrgent   bool // cap shipment priority at urgent
}

var nextActionRules = map[ShipmentStatus]nextActionRule{
	StatusQuoted:    {description: "Follow up on quote with customer", dueAfter: 24 * time.Hour},
	StatusBooked:    {description: "Arrange pickup with courier", dueAfter: 2 * time.Hour, escalate: true},
	StatusPickup:    {description: "Confirm package handover to courier", dueAfter: 4 * time.Hour, capUrgent: true},
	StatusInTransit: {description: "Monitor shipment progress", dueDeadline: true},
	StatusCustoms:   {description: "Track customs clearance", dueAfter: 12 * time.Hour, capUrgent: true},
	StatusDelivered: {description: "Obtain proof of delivery", dueAfter: 24 * time.Hour},
	StatusDocument:  {description: "Prepare and send invoice", dueAfter: 48 * time.Hour},
}

// PlanNextAction derives the single next-step hint for a shipment in the
// given status. Terminal statuses have no next action. The result is always
// recomputed from the rule table, never carried forward, so priority changes
// and elapsed time are reflected without a status change.
//
// The current time is an explicit parameter so the planner stays pure.
func PlanNextAction(status ShipmentStatus, priority Priority, sla SLA, now time.Time) *NextTask {
	rule, ok := nextActionRules[status]
	if !ok {
		return nil
	}

	task := &NextTask{
		Description: rule.description,
		Priority:    priority,
	}
	switch {
	case rule.escalate:
		task.Priority = PriorityUrgent
	case rule.capUrgent:
		task.Priority = priority.CapAtUrgent()
	}

	if rule.dueDeadline {
		due := sla.Deadline
		task.DueDate = &due
	} else if rule.dueAfter > 0 {
		due := now.Add(rule.dueAfter)
		task.DueDate = &due
	}
	return task
}
