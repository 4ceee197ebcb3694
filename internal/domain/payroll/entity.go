package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CycleStatus string

const (
	CycleStatusOpen      CycleStatus = "open"
	CycleStatusProcessed CycleStatus = "processed"
)

// Cycle is one payroll run period. Items attach to a cycle; processing a
// cycle snapshots one payslip per active employee.
type Cycle struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time
	Status    CycleStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ItemScope string

const (
	// ScopeGlobal items apply to every employee in the cycle.
	ScopeGlobal ItemScope = "global"
	// ScopeSpecific items apply only to the employee they name.
	ScopeSpecific ItemScope = "specific"
)

type ItemType string

const (
	ItemTypeEarning      ItemType = "earning"
	ItemTypeDeduction    ItemType = "deduction"
	ItemTypeContribution ItemType = "contribution"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeEarning, ItemTypeDeduction, ItemTypeContribution:
		return true
	}
	return false
}

// Item is a one-off earning, deduction, or contribution attached to a cycle.
// EmployeeID is set iff Scope is specific.
type Item struct {
	ID         string
	CycleID    string
	Scope      ItemScope
	EmployeeID *string
	Type       ItemType
	Category   string
	Amount     decimal.Decimal
	// StartDate and EndDate describe the period the item covers, which may
	// be narrower than the cycle. Display-only, never used for inclusion.
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemsForEmployee filters items down to those that apply to the given
// employee: global items, plus specific items that name the employee.
func ItemsForEmployee(items []Item, employeeID string) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		switch item.Scope {
		case ScopeGlobal:
			result = append(result, item)
		case ScopeSpecific:
			if item.EmployeeID != nil && *item.EmployeeID == employeeID {
				result = append(result, item)
			}
		}
	}
	return result
}

// Partition splits items into earnings and deductions. Contributions count
// as deductions because they reduce net pay the same way.
func Partition(items []Item) (earnings, deductions []Item) {
	for _, item := range items {
		if item.Type == ItemTypeEarning {
			earnings = append(earnings, item)
		} else {
			deductions = append(deductions, item)
		}
	}
	return earnings, deductions
}

// SumAmounts totals item amounts with exact decimal arithmetic.
func SumAmounts(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
