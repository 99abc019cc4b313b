package domain

// DashboardState is the read model behind one render of the dashboard. It is
// rebuilt from scratch on every request; nothing is cached between renders.
type DashboardState struct {
	Slots         []ParkingSlot `json:"slots"`
	TotalSlots    int           `json:"total_slots"`
	OccupiedSlots int           `json:"occupied_slots"`
	OccupancyPct  float64       `json:"occupancy_pct"`
	CurrentRate   float64       `json:"current_rate"`
	Surge         bool          `json:"surge"`
	AuditTrail    []AuditEntry  `json:"audit_trail"`
}
