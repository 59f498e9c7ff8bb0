package reindex

import (
	"time"

	"indexing-srv/internal/model"
)

// Config holds the walker settings.
type Config struct {
	// ReindexPrefix and BaseURL resolve reindex request paths.
	ReindexPrefix string
	BaseURL       string
	MaxDepth      int     // 0 means unlimited
	FetchRate     float64 // containment fetches per second, 0 means unlimited
	FetchBurst    int
	VisitedTTL    time.Duration
}

// WalkItem is one resource of a walk.
type WalkItem struct {
	WalkID     string
	Descriptor model.ResourceDescriptor
	Depth      int
}

// Child returns the walk item for a contained resource.
func (w WalkItem) Child(d model.ResourceDescriptor) WalkItem {
	return WalkItem{WalkID: w.WalkID, Descriptor: d, Depth: w.Depth + 1}
}

// TriggerInput is the input for Trigger
type TriggerInput struct {
	// RequestPath is the raw request URI, reindex prefix included.
	RequestPath string
}

// TriggerOutput is the output for Trigger
type TriggerOutput struct {
	WalkID     string
	Identifier string
	URI        string
}
