package bustime

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultBaseURL is the production CTA BusTracker API base. The key and the
// endpoint path are appended to it.
const DefaultBaseURL = "http://ctabustracker.com/bustime/api/v2/"

// formatJSON asks the API for a JSON body instead of the default XML. This
// package only decodes JSON, so every fetch operation sets it.
const formatJSON = "format=json"

// RequestSpec is everything needed to derive one request URL: the endpoint,
// the caller-ordered parameters and whether a JSON body is requested. Specs
// are built per call and discarded once the URL exists.
type RequestSpec struct {
	Endpoint Endpoint
	Params   []ParamValue
	JSON     bool
}

// BuildURL assembles <base><endpoint>?key=<key>[&param=value]...[&format=json].
//
// The key always follows the endpoint path immediately, and parameters keep
// the order the caller supplied. Nothing checks that the endpoint's required
// parameters are present; an incomplete request comes back from the API as an
// error envelope. The only local failure is an assembled string that does not
// parse as a URL.
func BuildURL(base, key string, spec RequestSpec) (string, error) {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(spec.Endpoint.Path())
	b.WriteString("?key=")
	b.WriteString(url.QueryEscape(key))
	for _, pv := range spec.Params {
		b.WriteByte('&')
		b.WriteString(pv.Param.Key())
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pv.Value))
	}
	if spec.JSON {
		b.WriteString("&" + formatJSON)
	}

	raw := b.String()
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &RequestError{URL: MaskKey(raw), Err: err}
	}
	return raw, nil
}

var keyPattern = regexp.MustCompile(`([?&]key=)[^&]*`)

// MaskKey replaces the value of the key parameter in a request URL. Request
// URLs carry the API credential, so they must pass through here before being
// logged or put into an error.
func MaskKey(rawURL string) string {
	return keyPattern.ReplaceAllString(rawURL, "${1}***")
}
