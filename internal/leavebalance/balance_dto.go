package leavebalance

type TypeCounters struct {
	Total        float64 `json:"total"`
	Used         float64 `json:"used"`
	Available    float64 `json:"available"`
	Pending      float64 `json:"pending"`
	CarryForward float64 `json:"carry_forward,omitempty"`
}

type BalanceResponse struct {
	EmployeeID string                  `json:"employee_id"`
	Year       int                     `json:"year"`
	Balances   map[string]TypeCounters `json:"balances"`
}

func mapToResponse(employeeID string, year int, entries []Balance) BalanceResponse {
	resp := BalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		Balances:   make(map[string]TypeCounters, len(entries)),
	}
	for _, e := range entries {
		resp.Balances[e.LeaveType] = TypeCounters{
			Total:        e.Total,
			Used:         e.Used,
			Available:    e.Available,
			Pending:      e.Pending,
			CarryForward: e.CarryForward,
		}
	}
	return resp
}
