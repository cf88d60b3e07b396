package cmd

import (
	"fmt"
)

// Error carries the process exit code along with the failure.
type Error struct {
	Err      error
	ExitCode int
}

func Err(code int, err error) *Error {
	return &Error{Err: err, ExitCode: code}
}

func Errorf(code int, format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Errorf(format, args...), ExitCode: code}
}

// Usage wraps a usage message for cmd. With a format it reports a bad
// invocation; without one it is the help text itself.
func Usage(cmd Runnable, code int, formatAndArgs ...interface{}) *Error {
	var err error
	if len(formatAndArgs) > 0 {
		format := formatAndArgs[0].(string)
		args := formatAndArgs[1:]
		err = fmt.Errorf("error: %v\n\n%v\n", fmt.Sprintf(format, args...), cmd.ShortUsage())
	} else {
		err = fmt.Errorf("%v\n\n%v\n", cmd.ShortUsage(), cmd.Usage())
	}
	return &Error{Err: err, ExitCode: code}
}

func (c *Error) Error() string {
	return c.Err.Error()
}
