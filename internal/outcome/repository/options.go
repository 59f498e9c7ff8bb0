package repository

// CreateFailureOptions - Options for CreateFailure
type CreateFailureOptions struct {
	Route        string
	Branch       string
	Identifier   string
	BaseURL      string
	EventType    string
	ErrorMessage string
}

// ListFailuresOptions - Options for ListFailures. Unresolved rows only, oldest first.
type ListFailuresOptions struct {
	Limit  int
	Offset int
}
