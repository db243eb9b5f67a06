package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Internal server error"

	DateTimeFormat = "2006-01-02 15:04:05"
)
