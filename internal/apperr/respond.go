package apperr

import (
	"encoding/json"
	"net/http"
)

// WriteHTTP writes err to w as a JSON body of the form {"detail": "..."}
// with the status its kind maps to. Internal faults get a generic detail so
// store errors never leak. Unauthenticated responses carry the bearer
// challenge header.
func WriteHTTP(w http.ResponseWriter, err error) {
	kind := KindOf(err)
	detail := "Internal Server Error"
	if kind != Internal {
		detail = err.Error()
	}
	if kind == Unauthenticated {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(kind.HTTPStatus())
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
