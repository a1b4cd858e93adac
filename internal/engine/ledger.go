package engine

import (
	"strings"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
)

// DefaultDay is assumed when an instance carries no day information at all.
const DefaultDay = "Monday"

// ResolveDay returns the day of week an assignment instance applies to.
// The day recorded on the first entry wins over the plan-level selected
// day; with neither present the instance defaults to Monday.
func ResolveDay(a domain.Assignment) string {
	if len(a.Entries) > 0 && strings.TrimSpace(a.Entries[0].Day) != "" {
		return strings.TrimSpace(a.Entries[0].Day)
	}
	if strings.TrimSpace(a.SelectedDay) != "" {
		return strings.TrimSpace(a.SelectedDay)
	}
	return DefaultDay
}

// AssignedClientSet computes, from the full set of non-template plan
// instances, the client ids already bound to the given template for the
// given day. Instances carrying a template id are matched on
// (templateId, day); legacy instances without one fall back to
// (planName, day). The result is a uniqueness-enforcing set keyed by the
// trimmed client id string.
func AssignedClientSet(instances []domain.Assignment, templateID, templateName, day string) map[string]bool {
	day = strings.TrimSpace(day)
	if day == "" {
		day = DefaultDay
	}

	assigned := make(map[string]bool)
	for _, inst := range instances {
		if ResolveDay(inst) != day {
			continue
		}
		if inst.TemplateID != nil {
			if inst.TemplateID.Hex() != templateID {
				continue
			}
		} else if !strings.EqualFold(strings.TrimSpace(inst.PlanName), strings.TrimSpace(templateName)) {
			continue
		}
		assigned[strings.TrimSpace(inst.ClientID.Hex())] = true
	}
	return assigned
}
