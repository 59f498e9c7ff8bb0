package model

// EventTypeNodeRemoved marks a change event as a deletion.
const EventTypeNodeRemoved = "NODE_REMOVED"

// ChangeEvent is a repository change notification as received from the bus.
type ChangeEvent struct {
	Identifier string `json:"identifier"`
	EventType  string `json:"event_type"`
	BaseURL    string `json:"base_url"`
}

// IsDelete reports whether the event removes the resource.
// Any other event type, including an empty one, is an update.
func (e ChangeEvent) IsDelete() bool {
	return e.EventType == EventTypeNodeRemoved
}

// Descriptor returns the resource the event refers to.
func (e ChangeEvent) Descriptor() ResourceDescriptor {
	return ResourceDescriptor{Identifier: e.Identifier, BaseURL: e.BaseURL}
}

// ResourceDescriptor addresses a repository resource.
type ResourceDescriptor struct {
	Identifier string `json:"identifier"`
	BaseURL    string `json:"base_url"`
}

// URI returns the RDF subject of the resource.
func (d ResourceDescriptor) URI() string {
	return d.BaseURL + d.Identifier
}

// IndexableTransform is the indexing marker read from a resource representation.
type IndexableTransform struct {
	TransformName string
	Indexable     bool
}
