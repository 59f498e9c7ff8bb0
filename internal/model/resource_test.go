package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeEventIsDelete(t *testing.T) {
	tests := []struct {
		eventType string
		want      bool
	}{
		{"NODE_REMOVED", true},
		{"NODE_ADDED", false},
		{"PROPERTY_CHANGED", false},
		{"", false},
		{"node_removed", false},
	}
	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			assert.Equal(t, tt.want, ChangeEvent{EventType: tt.eventType}.IsDelete())
		})
	}
}

func TestResourceDescriptorURI(t *testing.T) {
	d := ResourceDescriptor{Identifier: "/objects/42", BaseURL: "http://localhost:8080/rest"}
	assert.Equal(t, "http://localhost:8080/rest/objects/42", d.URI())
}

func TestStageResultFailed(t *testing.T) {
	ok := StageResult{Route: RouteDelete, Branch: BranchIndex}
	assert.False(t, ok.Failed())
	assert.Empty(t, ok.ErrorMessage())

	bad := StageResult{Route: RouteDelete, Branch: BranchIndex, Err: errors.New("boom")}
	assert.True(t, bad.Failed())
	assert.Equal(t, "boom", bad.ErrorMessage())
}
