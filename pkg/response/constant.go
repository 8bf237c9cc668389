package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"

	InternalServerErrorCode = 500
)
