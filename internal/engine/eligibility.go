package engine

import "strings"

// ClientView is the resolved shape eligibility works over: the package
// reference has already been resolved to its name by the caller, so the
// rules below never have to distinguish populated from unpopulated refs.
type ClientView struct {
	ID          string
	Name        string
	PackageName string
}

// basicPackageName is excluded from untagged sessions.
const basicPackageName = "fit basics"

// planTagSubstrings is the whitelist mapping a session's plan tag to the
// substring its clients' package names must contain. An unrecognized tag
// matches nothing. Kept exactly as the product defines it; do not
// generalize the matching.
var planTagSubstrings = map[string]string{
	"fitplus": "fit plus",
	"pro":     "pro transformation",
	"elite":   "elite",
}

// EligibleClients returns, in input order, the clients who may be offered
// the session. committedElsewhere holds ids of clients already in some
// other open session; inThisSession holds ids already on this session's
// roster (those are retained so callers can render their assigned state).
// Never fails; returns an empty slice when nobody qualifies.
func EligibleClients(clients []ClientView, planTag string, committedElsewhere, inThisSession map[string]bool) []ClientView {
	eligible := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		pkg := strings.ToLower(strings.TrimSpace(c.PackageName))
		if pkg == "" {
			continue
		}
		if !packageMatchesTag(pkg, planTag) {
			continue
		}
		if !inThisSession[c.ID] && committedElsewhere[c.ID] {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

func packageMatchesTag(lowerPkg, planTag string) bool {
	tag := strings.ToLower(strings.TrimSpace(planTag))
	if tag == "" {
		return lowerPkg != basicPackageName
	}
	needle, ok := planTagSubstrings[tag]
	if !ok {
		return false
	}
	return strings.Contains(lowerPkg, needle)
}
