package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeSick         = "sick"
	TypeCasual       = "casual"
	TypeAnnual       = "annual"
	TypeMaternity    = "maternity"
	TypePaternity    = "paternity"
	TypeUnpaid       = "unpaid"
	TypeCompensatory = "compensatory"
)

// Ledger actions, one per leave-status transition.
const (
	ActionAddPending = "add_pending"
	ActionApprove    = "approve"
	ActionReject     = "reject"
	ActionCancel     = "cancel"
)

// defaultTotals are the yearly entitlements seeded on first creation.
var defaultTotals = map[string]float64{
	TypeSick:         12,
	TypeCasual:       10,
	TypeAnnual:       15,
	TypeMaternity:    180,
	TypePaternity:    15,
	TypeUnpaid:       0,
	TypeCompensatory: 0,
}

// LeaveTypes lists all known types in a stable order.
var LeaveTypes = []string{
	TypeSick, TypeCasual, TypeAnnual, TypeMaternity,
	TypePaternity, TypeUnpaid, TypeCompensatory,
}

func ValidType(leaveType string) bool {
	_, ok := defaultTotals[leaveType]
	return ok
}

// Balance is one counter row of the ledger: per employee, per year, per type.
type Balance struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_balance_employee_year_type"`
	Year         int       `gorm:"column:year;not null;uniqueIndex:uq_balance_employee_year_type"`
	LeaveType    string    `gorm:"column:leave_type;type:varchar(20);not null;uniqueIndex:uq_balance_employee_year_type"`
	Total        float64   `gorm:"column:total;type:numeric(6,1);not null;default:0"`
	Used         float64   `gorm:"column:used;type:numeric(6,1);not null;default:0"`
	Available    float64   `gorm:"column:available;type:numeric(6,1);not null;default:0"`
	Pending      float64   `gorm:"column:pending;type:numeric(6,1);not null;default:0"`
	CarryForward float64   `gorm:"column:carry_forward;type:numeric(6,1);not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Balance) TableName() string {
	return "leave_balances"
}

// Apply mutates the counters for one leave-status transition. It performs no
// validation of its own: the creation path checks sufficiency before
// add_pending, and callers invoke exactly one action per status change.
// Unknown actions are a no-op.
func (b *Balance) Apply(action string, days float64) {
	switch action {
	case ActionAddPending:
		b.Pending += days
		b.Available -= days
	case ActionApprove:
		b.Pending -= days
		b.Used += days
	case ActionReject, ActionCancel:
		b.Pending -= days
		b.Available += days
	}
}

// DefaultEntries builds the seven default counter rows for a (employee, year).
func DefaultEntries(employeeID uuid.UUID, year int) []Balance {
	entries := make([]Balance, 0, len(LeaveTypes))
	for _, leaveType := range LeaveTypes {
		total := defaultTotals[leaveType]
		entries = append(entries, Balance{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Year:       year,
			LeaveType:  leaveType,
			Total:      total,
			Available:  total,
		})
	}
	return entries
}
