package domain

// Opportunity is one row of /api/opportunities. Optional fields are
// empty when the backend omits them or sends null.
type Opportunity struct {
	Title          string `json:"title"`
	CompanyName    string `json:"company_name"`
	RoleType       string `json:"role_type,omitempty"`
	Location       string `json:"location,omitempty"`
	DiscoveredDate string `json:"discovered_date,omitempty"` // ISO-8601
	URL            string `json:"url,omitempty"`
}
