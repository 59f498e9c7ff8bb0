package sparql

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	pkghttp "indexing-srv/pkg/http"
)

// DeleteStatement builds the update removing all triples of uri.
func DeleteStatement(uri string) (string, error) {
	if err := checkIRI(uri); err != nil {
		return "", err
	}
	return fmt.Sprintf("DELETE WHERE { <%s> ?p ?o }", uri), nil
}

// ReplaceStatement builds the update replacing the triples of uri with ntriples.
func ReplaceStatement(uri string, ntriples []byte) (string, error) {
	del, err := DeleteStatement(uri)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(del)
	b.WriteString(" ;\nINSERT DATA {\n")
	b.Write(ntriples)
	if len(ntriples) > 0 && ntriples[len(ntriples)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString("}")
	return b.String(), nil
}

// checkIRI rejects characters that would end an IRIREF early.
func checkIRI(uri string) error {
	for _, r := range uri {
		if r <= 0x20 || r == 0x7f || strings.ContainsRune(iriForbidden, r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidIRI, uri, r)
		}
	}
	return nil
}

// Delete implements ISparql.
func (s *sparqlImpl) Delete(ctx context.Context, uri string) error {
	statement, err := DeleteStatement(uri)
	if err != nil {
		return err
	}
	return s.post(ctx, statement)
}

// Replace implements ISparql.
func (s *sparqlImpl) Replace(ctx context.Context, uri string, ntriples []byte) error {
	statement, err := ReplaceStatement(uri, ntriples)
	if err != nil {
		return err
	}
	return s.post(ctx, statement)
}

func (s *sparqlImpl) post(ctx context.Context, statement string) error {
	form := url.Values{formField: {statement}}.Encode()

	body, statusCode, err := s.httpClient.PostRaw(ctx, s.endpoint, []byte(form), pkghttp.ContentTypeForm, nil)
	if err != nil {
		return fmt.Errorf("sparql: POST %s: %w", s.endpoint, err)
	}
	if statusCode < 200 || statusCode > 299 {
		return fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatus, statusCode, string(body))
	}
	return nil
}
