package apperror

// ErrorCode is the system-level error category.
type ErrorCode string

const (
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// BusinessCode is the specific business reason behind an error.
type BusinessCode string

const (
	BusinessCodeGeneral BusinessCode = "GENERAL"

	// Users
	BusinessCodeInvalidEmail       BusinessCode = "INVALID_EMAIL"
	BusinessCodeInvalidCredentials BusinessCode = "INVALID_CREDENTIALS"
	BusinessCodeEmailTaken         BusinessCode = "EMAIL_TAKEN"
	BusinessCodeUserNotFound       BusinessCode = "USER_NOT_FOUND"
	BusinessCodeInvalidToken       BusinessCode = "INVALID_TOKEN"

	// Threads
	BusinessCodeTopicNotFound    BusinessCode = "TOPIC_NOT_FOUND"
	BusinessCodePostNotFound     BusinessCode = "POST_NOT_FOUND"
	BusinessCodeNotOwner         BusinessCode = "NOT_OWNER"
	BusinessCodeInvalidFormat    BusinessCode = "INVALID_FORMAT"
	BusinessCodePermissionDenied BusinessCode = "PERMISSION_DENIED"

	// Likes
	BusinessCodeLikeNotFound BusinessCode = "LIKE_NOT_FOUND"
	BusinessCodeOwnPost      BusinessCode = "CANNOT_LIKE_OWN_POST"
	BusinessCodeAlreadyLiked BusinessCode = "ALREADY_LIKED"
)
