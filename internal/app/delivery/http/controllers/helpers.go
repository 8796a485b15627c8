package controllers

import (
	"medibook-client/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
