package catalog

// Outcome tells the caller which successful branch a mutation took.
type Outcome int

const (
	// Created means a new identity entered the active set and was logged.
	Created Outcome = iota + 1
	// Merged means the quantity of an existing identity was increased.
	Merged
	// Updated means a removal left stock on hand.
	Updated
	// Removed means a removal drove stock to zero and the record was archived.
	Removed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Merged:
		return "merged"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Result is returned by mutating operations. Record is a copy of the
// affected record after the mutation.
type Result struct {
	Outcome Outcome
	Record  Record
}
