package solr

const (
	// DefaultCommitWithin is the commit visibility window in milliseconds.
	DefaultCommitWithin = 500

	updatePath = "/update"
)
