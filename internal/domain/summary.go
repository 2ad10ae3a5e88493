package domain

// Summary is the /api/summary payload.
type Summary struct {
	TotalCompanies     int    `json:"total_companies"`
	TotalOpportunities int    `json:"total_opportunities"`
	TotalSignals       int    `json:"total_signals"`
	Summary            string `json:"summary"`
	LastUpdated        string `json:"last_updated,omitempty"`
}
