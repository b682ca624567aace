package insights

// ComputeChanges determines which tracked statistics changed between the
// previous snapshot and the current submission.
//
// A field is recorded iff both sides carry a value and the values differ
// exactly. A field that newly appears or is withdrawn produces no entry;
// only "had a value, now has a different value" counts as a change. The
// comparison is exact, with no floating point tolerance.
//
// When previous is nil (first-ever snapshot) the result is empty. Timestamps
// on the returned entries are assigned at persistence time, not here.
func ComputeChanges(previous *Snapshot, current *StatLine) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	if previous == nil {
		return changes
	}
	for _, field := range StatFields {
		oldValue := previous.Value(field)
		newValue := current.Value(field)
		if oldValue == nil || newValue == nil {
			continue
		}
		if *oldValue != *newValue {
			changes[field] = FieldChange{Old: *oldValue, New: *newValue}
		}
	}
	return changes
}
