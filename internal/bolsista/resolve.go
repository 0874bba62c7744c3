package bolsista

// Resolution is the outcome of reconciling the server-side roster with the
// previously held in-memory list. ShouldPersist signals that the chosen list
// must be written back to the store.
type Resolution struct {
	List          []Record
	ShouldPersist bool
}

// ResolveStored arbitrates between the stored roster and the previous
// in-memory one. A non-empty stored list always wins; with an empty store
// and a non-empty previous list, the previous list is resurfaced and flagged
// for persistence; otherwise the (possibly empty) stored list passes through.
func ResolveStored(previous, stored []Record, projectID string) Resolution {
	prev := make([]Record, len(previous))
	copy(prev, previous)

	if projectID == "" {
		return Resolution{List: prev}
	}

	if len(stored) > 0 {
		return Resolution{List: stored}
	}

	if len(prev) > 0 {
		return Resolution{List: prev, ShouldPersist: true}
	}

	out := make([]Record, len(stored))
	copy(out, stored)
	return Resolution{List: out}
}
