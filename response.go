package bustime

import "encoding/json"

// apiErrorEntry is one element of the bustime-response error array. Only the
// message is interesting; the entry also repeats the offending parameters.
type apiErrorEntry struct {
	Msg string `json:"msg"`
}

// decodeEnvelope interprets a Bustime response body. The decode is two-phase
// and the order is load-bearing: the error path is probed before the data
// path, because an error response carries no data path at all and must not be
// mistaken for zero results.
//
//  1. The body must hold a "bustime-response" object; anything else is a
//     DecodeError.
//  2. If the envelope has a non-empty "error" array, the first entry's msg is
//     returned verbatim as an APIError, even when a data path is present too.
//  3. Otherwise the resource array is decoded into out. An envelope without
//     the resource key decodes to an empty result, not a failure.
//
// out must be a pointer to a slice of the endpoint's record type.
func decodeEnvelope(body []byte, resource string, out any) error {
	var top struct {
		Response json.RawMessage `json:"bustime-response"`
	}
	if err := json.Unmarshal(body, &top); err != nil {
		return &DecodeError{Reason: "response is not valid JSON", Err: err}
	}
	if len(top.Response) == 0 || string(top.Response) == "null" {
		return &DecodeError{Reason: "missing bustime-response envelope"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(top.Response, &fields); err != nil {
		return &DecodeError{Reason: "bustime-response is not an object", Err: err}
	}

	if raw, ok := fields["error"]; ok {
		var errs []apiErrorEntry
		if err := json.Unmarshal(raw, &errs); err != nil {
			return &DecodeError{Reason: "malformed error envelope", Err: err}
		}
		if len(errs) > 0 {
			return &APIError{Msg: errs[0].Msg}
		}
	}

	raw, ok := fields[resource]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Reason: "malformed " + resource + " payload", Err: err}
	}
	return nil
}
