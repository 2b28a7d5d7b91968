package provision

// Outcome is the terminal state of an ensure step.
type Outcome string

const (
	// OutcomeFound means the resource already existed and was reused as is.
	OutcomeFound Outcome = "found"
	// OutcomeCreated means the resource was absent and has been created.
	OutcomeCreated Outcome = "created"
)

// PlanEnsure is the get-or-create decision, kept free of side effects: the
// lookup result picks the branch and the caller applies the single create
// call on OutcomeCreated.
func PlanEnsure(found bool) Outcome {
	if found {
		return OutcomeFound
	}
	return OutcomeCreated
}
