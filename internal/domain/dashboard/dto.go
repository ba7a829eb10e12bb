package dashboard

// Stats is the headline dashboard payload.
type Stats struct {
	ActiveEmployees int64 `json:"active_employees"`
	OnLeaveToday    int64 `json:"on_leave_today"`
	ClockedIn       int64 `json:"clocked_in"`
}
