package response

const (
	MessageSuccess      = "Success"
	MessageUnauthorized = "Unauthorized"
	MessageInternal     = "Something went wrong"

	CodeSuccess      = 0
	CodeUnauthorized = 401
	CodeInternal     = 500
	CodeValidation   = 400
)
