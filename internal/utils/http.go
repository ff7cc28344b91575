package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBody limits request bodies accepted by ReadJSON.
const MaxJSONBody = 1 << 20

// WriteJSON writes data as a JSON body with the given status. When data
// cannot be encoded a 500 is written instead and the encode error returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSONAs(w, "application/json", data, statusCode)
}

// WriteJSONAs is WriteJSON with an explicit content type.
func WriteJSONAs(w http.ResponseWriter, contentType string, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// ReadJSON decodes the request body into v. An empty body leaves v
// untouched.
func ReadJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxJSONBody+1))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(body) > MaxJSONBody {
		return fmt.Errorf("request body exceeds %d bytes", MaxJSONBody)
	}
	if len(body) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
