package errors

import "github.com/halobenaya/storefront/constant"

type CustomError struct {
	errType constant.ErrorType
	msg     string
}

func (c CustomError) Error() string {
	if c.msg != "" {
		return c.msg
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMsg overrides the default message of the error type, used
// when the message must name the offending field or the missing identifiers.
func SetCustomErrorMsg(errorType constant.ErrorType, msg string) CustomError {
	return CustomError{
		errType: errorType,
		msg:     msg,
	}
}
