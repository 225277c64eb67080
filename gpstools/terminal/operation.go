package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation
type Operation struct {
	w    io.Writer
	done chan struct{}
	wg   sync.WaitGroup
}

// NewOperation starts a long running operation, animating a spinner on w until it ends
func NewOperation(w io.Writer, format string, a ...interface{}) *Operation {
	o := &Operation{
		w:    w,
		done: make(chan struct{}),
	}
	label := fmt.Sprintf(format, a...)
	spinFrames := []rune(spinner)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

		for {
			select {
			case <-o.done:
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r  %s%s%s %s ", yellow, label, reset, string(spinFrames[pos%len(spinFrames)]))
				pos++
			}
		}
	}()

	return o
}

// Success informs that the operation succeeded
func (o *Operation) Success(format string, a ...interface{}) {
	o.finished("✓", green, fmt.Sprintf(format, a...))
}

// Error informs that the operation failed
func (o *Operation) Error(err error, format string, a ...interface{}) {
	o.finished("✗", red, message(err, format, a...))
}

func (o *Operation) finished(symbol string, color string, m string) {
	close(o.done)
	o.wg.Wait()

	fmt.Fprintf(o.w, "\033[2K\r%s %s%s%s \n", symbol, color, m, reset)
}
