package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// RoundScore rounds half up (toward +Inf), so -2.5 becomes -2. The
// result stays a float so scores beyond the int range keep their tier.
func RoundScore(score float64) float64 {
	return math.Floor(score + 0.5)
}

// Tier classifies an already rounded score. Out-of-range scores are not
// clamped.
func Tier(rounded float64) string {
	switch {
	case rounded >= 70:
		return TierHigh
	case rounded >= 40:
		return TierMedium
	default:
		return TierLow
	}
}

func ScoreBadge(score float64) string {
	r := RoundScore(score)
	return fmt.Sprintf(`<span class="score-badge score-%s">%s</span>`, Tier(r), scoreText(r))
}

// scoreText prints whole numbers in plain digits below 1e21 and in
// exponent form above, the way a browser stringifies them.
func scoreText(r float64) string {
	if math.Abs(r) < 1e21 {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// roleKeywords is checked in order; the first hit wins.
var roleKeywords = []string{"security", "compliance", "grc"}

// RoleClass returns the modifier class for a role type, or "" when no
// keyword matches.
func RoleClass(roleType string) string {
	low := strings.ToLower(roleType)
	for _, kw := range roleKeywords {
		if strings.Contains(low, kw) {
			return "role-" + kw
		}
	}
	return ""
}

func RoleTypeBadge(roleType string) string {
	if roleType == "" {
		return `<span class="role-type">N/A</span>`
	}
	class := "role-type"
	if mod := RoleClass(roleType); mod != "" {
		class += " " + mod
	}
	return fmt.Sprintf(`<span class="%s">%s</span>`, class, EscapeHTML(roleType))
}
