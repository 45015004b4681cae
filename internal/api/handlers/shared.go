package handlers

import (
	"encoding/json"
	"net/http"
)

// parseJSON decodes a JSON request body into the given type.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}
