package gateway

import (
	"errors"
	"fmt"
)

// Kind distinguishes why a fetch failed.
type Kind int

const (
	// KindNetwork covers transport failures, including canceled requests.
	KindNetwork Kind = iota + 1
	// KindStatus is a non-2xx upstream response.
	KindStatus
	// KindDecode is a 2xx response whose body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is the only error type returned by Client fetches.
type FetchError struct {
	Kind Kind
	// StatusCode is set for KindStatus and KindDecode.
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: upstream status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusCode reports the upstream status carried by a KindStatus failure.
func StatusCode(err error) (int, bool) {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Kind == KindStatus {
		return fe.StatusCode, true
	}
	return 0, false
}
