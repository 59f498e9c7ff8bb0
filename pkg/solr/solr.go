package solr

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	pkghttp "indexing-srv/pkg/http"
)

// NewDeleteRequest builds the delete-by-id payload for id.
func NewDeleteRequest(id string, commitWithin int) DeleteRequest {
	return DeleteRequest{Delete: DeleteCommand{ID: id, CommitWithin: strconv.Itoa(commitWithin)}}
}

// Delete implements ISolr.
func (s *solrImpl) Delete(ctx context.Context, id string) error {
	payload, err := json.Marshal(NewDeleteRequest(id, s.commitWithin))
	if err != nil {
		return fmt.Errorf("solr: marshal delete: %w", err)
	}
	return s.post(ctx, s.baseURL+updatePath, payload)
}

// Update implements ISolr.
func (s *solrImpl) Update(ctx context.Context, doc []byte) error {
	url := s.baseURL + updatePath + "?commitWithin=" + strconv.Itoa(s.commitWithin)
	return s.post(ctx, url, doc)
}

func (s *solrImpl) post(ctx context.Context, url string, payload []byte) error {
	body, statusCode, err := s.httpClient.PostRaw(ctx, url, payload, pkghttp.ContentTypeJSON, nil)
	if err != nil {
		return fmt.Errorf("solr: POST %s: %w", url, err)
	}
	if statusCode < 200 || statusCode > 299 {
		return fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatus, statusCode, string(body))
	}
	return nil
}
