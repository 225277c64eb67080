package terminal

import (
	"fmt"
	"io"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Error prints an error line, followed by the cause if any
func Error(w io.Writer, err error, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s%s%s\n", red, message(err, format, a...), reset)
}

func message(err error, format string, a ...interface{}) string {
	m := fmt.Sprintf(format, a...)
	if err != nil {
		m = fmt.Sprintf("%s [%s]", m, err)
	}
	return m
}
