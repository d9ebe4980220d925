package bustime

import "fmt"

// RequestError reports that an assembled request string was not a valid URL.
// The offending URL is kept with the key parameter masked.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("bustime: malformed request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// TransportError reports a failed HTTP round trip: either the connection
// could not be established (Err set) or the API answered with a non-OK
// status (Status set).
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bustime: transport: %v", e.Err)
	}
	return fmt.Sprintf("bustime: transport: HTTP %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError carries the verbatim message from a bustime-response error
// envelope. Its presence means the request reached the API and was rejected,
// e.g. "No data found for parameter" or "Invalid API access key supplied".
type APIError struct {
	Msg string
}

func (e *APIError) Error() string { return "bustime: API error: " + e.Msg }

// DecodeError reports a response body that does not carry a bustime-response
// envelope at all, or an envelope whose payload cannot be decoded.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bustime: decode: %s: %v", e.Reason, e.Err)
	}
	return "bustime: decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }
