package handler

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Violation types, kept stable for clients that match on them.
const (
	typeMissing  = "missing"
	typeDictType = "dict_type"
)

var errInvalidJSON = errors.New("invalid JSON")

func missing(loc ...string) ValidationError {
	return ValidationError{Loc: loc, Msg: "Field required", Type: typeMissing}
}

func notAMapping(loc ...string) ValidationError {
	return ValidationError{Loc: loc, Msg: "Input should be a valid dictionary", Type: typeDictType}
}

// decodeURLPayload checks body against the URLPayload schema. A non-nil
// error means the body is not JSON at all; schema violations are returned
// as ValidationErrors.
func decodeURLPayload(body []byte) (*URLPayload, []ValidationError, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, []ValidationError{missing("body")}, nil
	}
	if !json.Valid(body) {
		return nil, nil, errInvalidJSON
	}

	if body[0] != '{' {
		return nil, []ValidationError{notAMapping("body")}, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, []ValidationError{notAMapping("body")}, nil
	}

	raw, ok := fields["urls"]
	if !ok {
		return nil, []ValidationError{missing("body", "urls")}, nil
	}
	// A JSON null would unmarshal into a nil map without error.
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, []ValidationError{notAMapping("body", "urls")}, nil
	}

	payload := &URLPayload{}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&payload.URLs); err != nil {
		return nil, []ValidationError{notAMapping("body", "urls")}, nil
	}
	return payload, nil, nil
}
