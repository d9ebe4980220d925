package bustime

import (
	"io"
	"net/http"
)

// get performs one synchronous GET and returns the raw body. A connection
// failure or a non-OK status surfaces as a TransportError; the body is not
// inspected here. Timeouts are whatever the configured http.Client enforces.
func (c *Client) get(requestURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		// The error from http.Client.Get embeds the URL, key included.
		return nil, &TransportError{Err: maskedErr(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return body, nil
}

// maskedErr rewrites any request URL embedded in a transport error so the
// credential never leaks into logs.
func maskedErr(err error) error {
	return &urlError{msg: MaskKey(err.Error())}
}

type urlError struct{ msg string }

func (e *urlError) Error() string { return e.msg }
