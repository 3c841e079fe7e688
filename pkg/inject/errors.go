package inject

import (
	"errors"
	"fmt"
)

// ErrAlreadyInjected reports that a stylesheet path is already present in
// the document's manifest. Double injection is a caller logic error, not a
// silent skip; callers wanting skip-if-present semantics can errors.Is it.
var ErrAlreadyInjected = errors.New("stylesheet already injected")

// ParseError reports a manifest attribute that is present but not valid
// JSON. The injection is aborted before any file read.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse injection manifest %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadError reports a failure reading the stylesheet file. No partial
// injection occurs.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read stylesheet %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// RemoteError reports a rejected remote-execution or style-insertion call.
// When Op is "update-manifest" the CSS has already been applied to the
// document but the manifest was not updated.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
