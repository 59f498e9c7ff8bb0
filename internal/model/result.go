package model

import "time"

// Route names
const (
	RouteEventRouter = "event-router"
	RouteDelete      = "delete-propagator"
	RouteUpdate      = "update-propagator"
	RouteWalker      = "indexing-walker"
)

// Branch names
const (
	BranchClassify    = "classify"
	BranchLog         = "log"
	BranchTriplestore = "triplestore"
	BranchIndex       = "search-index"
	BranchFetch       = "fetch"
	BranchDispatch    = "dispatch"
	BranchResolve     = "resolve"
)

// StageResult is the tagged outcome of one pipeline step.
type StageResult struct {
	Route      string             `json:"route"`
	Branch     string             `json:"branch"`
	Descriptor ResourceDescriptor `json:"descriptor"`
	EventType  string             `json:"event_type,omitempty"`
	Err        error              `json:"-"`
	At         time.Time          `json:"at"`
}

// Failed reports whether the step failed.
func (r StageResult) Failed() bool {
	return r.Err != nil
}

// ErrorMessage returns the error text, or "" on success.
func (r StageResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
