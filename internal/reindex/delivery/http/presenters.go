package http

import "indexing-srv/internal/reindex"

type triggerResp struct {
	WalkID     string `json:"walk_id"`
	Identifier string `json:"identifier"`
	URI        string `json:"uri"`
}

func (h *handler) newTriggerResp(o reindex.TriggerOutput) triggerResp {
	return triggerResp{
		WalkID:     o.WalkID,
		Identifier: o.Identifier,
		URI:        o.URI,
	}
}
