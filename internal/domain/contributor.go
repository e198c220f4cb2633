package domain

// Contributor is a persisted identity record. The id is stable and never
// changes; the full name stored at first sight wins on later conflicts.
type Contributor struct {
	ContributorID string
	FullName      string
}
