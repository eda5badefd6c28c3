package serializer

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger routes server-side error details to l.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK
func OK(msg string, data interface{}) Response {
	return Response{Success: true, Message: msg, Data: data}
}

// List
func List(count int, data interface{}) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Err
func Err(msg string, err error) Response {
	res := Response{Message: msg}
	if err != nil {
		log.Sugar().Errorw(msg, "err", err)
		// development mode, show error detail
		if gin.Mode() != gin.ReleaseMode {
			res.Error = fmt.Sprintf("%+v", err)
		}
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	res := Response{Message: msg}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = err.Error()
	}
	return res
}

// Invalid lists every rule a payload broke.
func Invalid(msg string, errs []string) Response {
	if msg == "" {
		msg = "Validation failed."
	}
	return Response{Message: msg, Errors: errs}
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Response{Message: msg}
}

// Fail is a client-facing failure with no server-side detail.
func Fail(msg string) Response {
	return Response{Message: msg}
}
