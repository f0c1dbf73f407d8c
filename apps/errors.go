package apps

import "fmt"

// ArgumentError reports a malformed command line argument.
type ArgumentError struct {
	msg string
}

func NewArgumentError(msg string) *ArgumentError {
	return &ArgumentError{msg}
}

func NewArgumentErrorf(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{fmt.Sprintf(format, args...)}
}

func (err *ArgumentError) Error() string {
	return err.msg
}
