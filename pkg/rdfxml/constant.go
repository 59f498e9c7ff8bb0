package rdfxml

const (
	NamespaceRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceLDP      = "http://www.w3.org/ns/ldp#"
	NamespaceIndexing = "http://fedora.info/definitions/v4/indexing#"

	localContains  = "contains"
	localResource  = "resource"
	localIndexable = "Indexable"

	xpathType              = "//*[local-name()='type']"
	xpathIndexingTransform = "//*[local-name()='hasIndexingTransform']"
)
