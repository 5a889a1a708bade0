// File: internal/tailer/errors.go
// Brief: Error taxonomy for the log streaming engine.

package tailer

import "fmt"

// SelectionError indicates the namespace pod listing failed. It aborts the
// whole run since there is nothing to tail.
type SelectionError struct {
	Namespace string
	Err       error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("list pods in %s: %v", e.Namespace, e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// ConnectError indicates one pod's log stream could not be opened. Only that
// pod's tailer fails; siblings keep streaming.
type ConnectError struct {
	Pod string
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("open log stream for %s: %v", e.Pod, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// DecodeError indicates a log line was not valid UTF-8. It terminates only
// the offending tailer.
type DecodeError struct {
	Pod string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("log stream for %s produced invalid UTF-8", e.Pod)
}
