package repository

// MarkVisitedOptions - Options for MarkVisited
type MarkVisitedOptions struct {
	WalkID     string
	Identifier string
}
