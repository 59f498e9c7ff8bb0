package rabbitmq

// Repository event headers
const (
	HeaderIdentifier = "org.fcrepo.jms.identifier"
	HeaderEventType  = "org.fcrepo.jms.eventType"
	HeaderBaseURL    = "org.fcrepo.jms.baseURL"
)

// RepositoryNamespace qualifies event types on the wire.
const RepositoryNamespace = "http://fedora.info/definitions/v4/repository#"

// BindingKeyAll matches every routing key on a topic exchange.
const BindingKeyAll = "#"
