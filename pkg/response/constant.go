package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	MessageSuccess      = "Success"
	MessageAccepted     = "Accepted"
	MessageUnauthorized = "Unauthorized"
	MessageInternal     = "Something went wrong"

	ErrorCodeUnauthorized = 40100
	ErrorCodeInternal     = 50000
)
