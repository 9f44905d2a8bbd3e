package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const MaxBodyBytes = 2 << 20

var errTrailingData = errors.New("trailing data after JSON value")

type errorBody struct {
	Error   string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, tag string) {
	writeJSON(w, code, errorBody{Error: tag})
}

// writeRaw relays an upstream JSON body untouched.
func writeRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// bindJSON decodes the request body into v. Malformed JSON, trailing data
// and oversized bodies are rejected outright; a field of the wrong type is
// answered with the handler's own validation message. An empty body decodes
// as {}.
func bindJSON(w http.ResponseWriter, r *http.Request, v any, invalid string) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.UseNumber()
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		if _, err = dec.Token(); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errTrailingData
		}
	}

	var (
		syntaxErr *json.SyntaxError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, errTrailingData):
		writeError(w, http.StatusBadRequest, "invalid_json")
	default:
		writeError(w, http.StatusBadRequest, invalid)
	}
	return false
}
