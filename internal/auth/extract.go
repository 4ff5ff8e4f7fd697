package auth

import (
	"net/http"
	"strings"
)

// CookieName is the cookie carrying the access token.
const CookieName = "access_token"

const bearerPrefix = "Bearer "

// ExtractToken pulls a bearer token from the request. An Authorization
// header with a Bearer scheme (case-insensitive) takes absolute precedence
// over the cookie. A cookie value may itself start with "Bearer "; the
// prefix is stripped. ok is false when neither source is present, which is
// distinct from an invalid credential.
func ExtractToken(r *http.Request) (token string, ok bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, credential, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return credential, true
		}
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	if strings.HasPrefix(cookie.Value, bearerPrefix) {
		return cookie.Value[len(bearerPrefix):], true
	}
	return cookie.Value, true
}
