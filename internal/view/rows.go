package view

import (
	"fmt"
	"strings"
	"time"

	"roleradar-dashboard/internal/domain"
	"roleradar-dashboard/internal/format"
)

const (
	NoCompaniesRow     = `<tr><td colspan="5">No companies found. Run a search to discover opportunities.</td></tr>`
	NoOpportunitiesRow = `<tr><td colspan="6">No opportunities found. Run a search to discover opportunities.</td></tr>`
)

// CompanyRows renders one <tr> per company in the order given.
func CompanyRows(companies []domain.Company) string {
	if len(companies) == 0 {
		return NoCompaniesRow
	}
	var b strings.Builder
	for _, c := range companies {
		fmt.Fprintf(&b, `
<tr>
  <td><strong>%s</strong></td>
  <td>%s</td>
  <td>%d</td>
  <td>%d</td>
  <td>%s</td>
</tr>`,
			format.EscapeHTML(c.Name),
			format.ScoreBadge(c.Score),
			c.ActiveOpportunities,
			c.SignalsCount,
			format.EscapeHTML(format.OrNA(c.Location)),
		)
	}
	return b.String()
}

// OpportunityRows renders one <tr> per opportunity; dates are relative
// to now.
func OpportunityRows(opps []domain.Opportunity, loc format.Locale, now time.Time) string {
	if len(opps) == 0 {
		return NoOpportunitiesRow
	}
	var b strings.Builder
	for _, o := range opps {
		fmt.Fprintf(&b, `
<tr>
  <td><strong>%s</strong></td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
  <td>%s</td>
</tr>`,
			format.EscapeHTML(o.Title),
			format.EscapeHTML(o.CompanyName),
			format.RoleTypeBadge(o.RoleType),
			format.EscapeHTML(format.OrNA(o.Location)),
			format.EscapeHTML(loc.RelativeDate(o.DiscoveredDate, now)),
			viewLink(o.URL),
		)
	}
	return b.String()
}

func viewLink(u string) string {
	if u == "" {
		return "N/A"
	}
	return fmt.Sprintf(`<a href="%s" target="_blank" class="link-button">View</a>`, format.EscapeHTML(u))
}
