package requests

import (
	"encoding/json"
	"errors"
	"net/http"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// DecodeJSONBody decodes the request body into v, with a size cap and
// rejecting trailing garbage after the JSON value.
func DecodeJSONBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	// a second token means trailing data after the JSON value
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
