package response

const (
	MessageSuccess   = "Success"
	DefaultErrorCode = 1

	DateTimeFormat = "2006-01-02 15:04:05"
)
