package propagation

import "indexing-srv/internal/model"

// Config holds the propagation settings.
type Config struct {
	DefaultTransform string
}

// DeleteOutput is the output for Delete
type DeleteOutput struct {
	Results []model.StageResult
}

// UpdateOutput is the output for Update
type UpdateOutput struct {
	// Skipped is set when the resource is not indexable; nothing was written.
	Skipped       bool
	TransformName string
	Results       []model.StageResult
}

// Failed reports whether any branch failed.
func (o UpdateOutput) Failed() bool {
	return anyFailed(o.Results)
}

// Failed reports whether any branch failed.
func (o DeleteOutput) Failed() bool {
	return anyFailed(o.Results)
}

func anyFailed(results []model.StageResult) bool {
	for _, r := range results {
		if r.Failed() {
			return true
		}
	}
	return false
}
