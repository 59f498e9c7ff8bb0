package log

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// ctxKeyTraceID is read from the context and attached to every entry when present.
	ctxKeyTraceID ctxKey = "trace_id"
)

type ctxKey string
