package rdfxml

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const containerDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ldp="http://www.w3.org/ns/ldp#">
  <rdf:Description rdf:about="http://localhost:8080/rest/objects">
    <ldp:contains rdf:resource="http://localhost:8080/rest/objects/1"/>
    <ldp:contains rdf:resource="http://localhost:8080/rest/objects/2"/>
    <contains xmlns="http://www.w3.org/ns/ldp#" rdf:resource="http://localhost:8080/rest/objects/3"/>
  </rdf:Description>
</rdf:RDF>`

const indexableDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:indexing="http://fedora.info/definitions/v4/indexing#">
  <rdf:Description rdf:about="http://localhost:8080/rest/objects/42">
    <rdf:type rdf:resource="http://www.w3.org/ns/ldp#Container"/>
    <rdf:type rdf:resource="http://fedora.info/definitions/v4/indexing#indexable"/>
    <indexing:hasIndexingTransform>default-solr</indexing:hasIndexingTransform>
  </rdf:Description>
</rdf:RDF>`

func TestContains(t *testing.T) {
	doc, err := Parse(strings.NewReader(containerDoc))
	require.NoError(t, err)

	want := []string{
		"http://localhost:8080/rest/objects/1",
		"http://localhost:8080/rest/objects/2",
		"http://localhost:8080/rest/objects/3",
	}
	assert.Equal(t, want, slices.Collect(doc.Contains()))
	// ranging again restarts from the first child
	assert.Equal(t, want, slices.Collect(doc.Contains()))
}

func TestContainsEmpty(t *testing.T) {
	doc, err := Parse(strings.NewReader(indexableDoc))
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(doc.Contains()))
}

func TestContainsStopsEarly(t *testing.T) {
	doc, err := Parse(strings.NewReader(containerDoc))
	require.NoError(t, err)

	var got []string
	for uri := range doc.Contains() {
		got = append(got, uri)
		break
	}
	assert.Equal(t, []string{"http://localhost:8080/rest/objects/1"}, got)
}

func TestContainsIgnoresOtherNamespaces(t *testing.T) {
	const doc = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://example.org/">
  <rdf:Description rdf:about="http://x/a"><ex:contains rdf:resource="http://x/b"/></rdf:Description>
</rdf:RDF>`
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(d.Contains()))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><a></b></rdf:RDF>`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestIndexingTransform(t *testing.T) {
	doc, err := Parse(strings.NewReader(indexableDoc))
	require.NoError(t, err)

	name, indexable := doc.IndexingTransform()
	assert.True(t, indexable)
	assert.Equal(t, "default-solr", name)
}

func TestIndexingTransformNotIndexable(t *testing.T) {
	doc, err := Parse(strings.NewReader(containerDoc))
	require.NoError(t, err)

	name, indexable := doc.IndexingTransform()
	assert.False(t, indexable)
	assert.Empty(t, name)
}

func TestIndexingTransformWithoutName(t *testing.T) {
	const doc = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="http://x/a">
    <rdf:type rdf:resource="http://fedora.info/definitions/v4/indexing#Indexable"/>
  </rdf:Description>
</rdf:RDF>`
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	name, indexable := d.IndexingTransform()
	assert.True(t, indexable)
	assert.Empty(t, name)
}

func TestIsIndexableType(t *testing.T) {
	assert.True(t, isIndexableType("http://fedora.info/definitions/v4/indexing#Indexable"))
	assert.True(t, isIndexableType("http://fedora.info/definitions/v4/indexing#INDEXABLE"))
	assert.False(t, isIndexableType("http://example.org/indexing#Indexable"))
	assert.False(t, isIndexableType("http://fedora.info/definitions/v4/indexing"))
}
