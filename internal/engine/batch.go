package engine

// Per-client rejection reasons reported by AssignBatch.
const (
	ReasonAlreadyAssigned = "already assigned"
	ReasonBatchFull       = "batch full"
)

// AssignError records why one candidate was not assigned.
type AssignError struct {
	ClientID string `json:"clientId"`
	Reason   string `json:"reason"`
}

// BatchResult is the partial-success outcome of a batch assignment.
// Assigned preserves candidate order; successes are never rolled back.
type BatchResult struct {
	Assigned []string
	Errors   []AssignError
}

// AssignBatch walks the candidates in order against a snapshot of the
// session roster. A candidate already on the roster (or repeated earlier in
// the same batch) is rejected with "already assigned"; once the roster plus
// new assignments reaches maxCapacity the rest are rejected with "batch
// full". The caller serializes calls per session so the snapshot cannot go
// stale mid-batch.
func AssignBatch(roster []string, maxCapacity int, candidates []string) BatchResult {
	if maxCapacity <= 0 {
		maxCapacity = 10
	}

	onRoster := make(map[string]bool, len(roster))
	for _, id := range roster {
		onRoster[id] = true
	}

	result := BatchResult{Assigned: []string{}, Errors: []AssignError{}}
	count := len(roster)
	for _, id := range candidates {
		if onRoster[id] {
			result.Errors = append(result.Errors, AssignError{ClientID: id, Reason: ReasonAlreadyAssigned})
			continue
		}
		if count >= maxCapacity {
			result.Errors = append(result.Errors, AssignError{ClientID: id, Reason: ReasonBatchFull})
			continue
		}
		onRoster[id] = true
		count++
		result.Assigned = append(result.Assigned, id)
	}
	return result
}
