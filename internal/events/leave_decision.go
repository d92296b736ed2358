package events

import "time"

const LeaveDecisionTopic = "alms.leave.decision.v1"

// LeaveDecisionEvent is emitted when a pending leave is approved or rejected,
// for downstream notification systems.
type LeaveDecisionEvent struct {
	EventType    string    `json:"event_type"`
	LeaveID      string    `json:"leave_id"`
	EmployeeID   string    `json:"employee_id"`
	LeaveType    string    `json:"leave_type"`
	Status       string    `json:"status"`
	NumberOfDays float64   `json:"number_of_days"`
	DecidedBy    string    `json:"decided_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
