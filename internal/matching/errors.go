package matching

// Kind tags where a match computation failed so the HTTP boundary can map
// it to a status without string matching.
type Kind string

const (
	// KindUpstream covers non-success responses from the generative API
	// and transport failures reaching it.
	KindUpstream Kind = "upstream"
	// KindEmptyResponse means the call succeeded but no generated text
	// came back.
	KindEmptyResponse Kind = "empty_response"
)

// Error is the single failure type returned by the client. Message is safe
// to relay to the caller; Err holds the full upstream diagnostic and is
// only meant for operational logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }
