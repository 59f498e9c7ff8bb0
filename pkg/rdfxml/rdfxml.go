package rdfxml

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ErrParse is returned for malformed XML.
var ErrParse = errors.New("rdfxml: malformed document")

// Document is a parsed RDF/XML representation.
type Document struct {
	root *xmlquery.Node
}

// Parse reads an RDF/XML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Document{root: root}, nil
}

// Contains yields the objects of ldp:contains triples in document order.
// The sequence walks the tree lazily and can be ranged over repeatedly.
func (d *Document) Contains() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(d.root, func(n *xmlquery.Node) bool {
			if n.NamespaceURI != NamespaceLDP || n.Data != localContains {
				return true
			}
			uri := resourceAttr(n)
			if uri == "" {
				return true
			}
			return yield(uri)
		})
	}
}

// IndexingTransform reports whether the resource is typed indexing:Indexable
// and the literal of indexing:hasIndexingTransform, if any.
func (d *Document) IndexingTransform() (string, bool) {
	return d.transformName(), d.indexable()
}

func (d *Document) indexable() bool {
	for _, n := range xmlquery.Find(d.root, xpathType) {
		if n.NamespaceURI == NamespaceRDF && isIndexableType(resourceAttr(n)) {
			return true
		}
	}

	// typed node form: <indexing:Indexable rdf:about="...">
	found := false
	walk(d.root, func(n *xmlquery.Node) bool {
		if n.NamespaceURI == NamespaceIndexing && strings.EqualFold(n.Data, localIndexable) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (d *Document) transformName() string {
	for _, n := range xmlquery.Find(d.root, xpathIndexingTransform) {
		if n.NamespaceURI != NamespaceIndexing {
			continue
		}
		if name := strings.TrimSpace(n.InnerText()); name != "" {
			return name
		}
	}
	return ""
}

func isIndexableType(uri string) bool {
	ns, fragment, ok := strings.Cut(uri, "#")
	if !ok {
		return false
	}
	return ns+"#" == NamespaceIndexing && strings.EqualFold(fragment, localIndexable)
}

func resourceAttr(n *xmlquery.Node) string {
	for _, a := range n.Attr {
		if a.Name.Local == localResource {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// walk visits element nodes depth first in document order until fn returns false.
func walk(n *xmlquery.Node, fn func(*xmlquery.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if !fn(c) {
			return false
		}
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
