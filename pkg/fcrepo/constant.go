package fcrepo

const (
	MediaTypeRDFXML   = "application/rdf+xml"
	MediaTypeNTriples = "application/n-triples"

	preferContainment = "http://www.w3.org/ns/ldp#PreferContainment"
	serverManaged     = "http://fedora.info/definitions/v4/repository#ServerManaged"

	// PreferOmitContainment requests the resource without children or server managed triples.
	PreferOmitContainment = `return=representation; omit="` + preferContainment + " " + serverManaged + `"`
	// PreferContainmentOnly requests the containment triples without server managed ones.
	PreferContainmentOnly = `return=representation; include="` + preferContainment + `"; omit="` + serverManaged + `"`

	transformPath = "/fcr:transform/"
)
