package domain

// Company is one row of /api/companies.
type Company struct {
	Name                string  `json:"name"`
	Score               float64 `json:"score"`
	ActiveOpportunities int     `json:"active_opportunities"`
	SignalsCount        int     `json:"signals_count"`
	Location            string  `json:"location,omitempty"`
}
