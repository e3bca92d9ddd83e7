package responses

import (
	"encoding/json"
	"log"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// WriteJSONBytes writes pre-encoded JSON with the given status code.
func WriteJSONBytes(w http.ResponseWriter, statusCode int, jsonBytes []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonBytes); err != nil {
		log.Printf("[WARN] failed to write response body: %v", err)
	}
}

// EncodeWriteJSON encodes v and writes it with the given status code.
// Encoding failures surface as a plain 500; by then the header may
// already be committed, so the payload itself is never half-written.
func EncodeWriteJSON(w http.ResponseWriter, statusCode int, v any) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] failed to encode response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteJSONBytes(w, statusCode, jsonBytes)
}

// WriteSimpleErrorJSON writes a Message error envelope with the given
// status code.
func WriteSimpleErrorJSON(w http.ResponseWriter, statusCode int, msg string) {
	EncodeWriteJSON(w, statusCode, ErrorMessage(statusCode, msg))
}
