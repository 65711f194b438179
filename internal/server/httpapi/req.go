package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

const maxBodySize int64 = 1 << 20 // 1 MB

// bindJSON decodes the request body into dst, limiting the body size and
// rejecting trailing garbage.
func bindJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(dst); err != nil {
		return err
	}

	if decoder.More() {
		return errors.New("unexpected extra content in body")
	}

	return nil
}
