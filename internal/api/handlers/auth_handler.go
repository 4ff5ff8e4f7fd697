package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/auth"
	"github.com/earenas/taskboard/internal/services"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register handles new user registration. On success a fresh access token is
// issued and set as the session cookie, so registering also signs the user in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, isAdmin, err := parseCredentialsForm(r, true)
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.CreateUser(username, password, isAdmin)
	if err != nil {
		if !apperr.IsKind(err, apperr.Conflict) {
			log.Error().Err(err).Str("username", username).Msg("Failed to register user")
		}
		respondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue token")
		respondError(w, err)
		return
	}
	setTokenCookie(w, token, h.tokens.TTL())

	prefix := "User"
	if user.IsAdmin {
		prefix = "Admin"
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%s %s was created successfully", prefix, user.Username),
		"user":    user,
	})
}

// Login verifies credentials, sets the session cookie and redirects to the
// task list. The failure message never says which field was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, _, err := parseCredentialsForm(r, false)
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.AuthenticateUser(username, password)
	if err != nil {
		if apperr.IsKind(err, apperr.Unauthenticated) {
			log.Warn().Str("username", username).Msg("Failed login attempt")
		}
		respondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue token")
		respondError(w, err)
		return
	}
	setTokenCookie(w, token, h.tokens.TTL())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session cookie and redirects to the login page. The
// route sits behind the auth middleware, so only an authenticated, active
// user can log out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}

// LoginPage serves a minimal HTML login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `
    This page is for logging in to the server. After logging in you will
    receive an access_token cookie with a JWT and be redirected to the main page.<br>
    If you are not registered yet, visit /register/ first.
    <form action="/login/" method="post">
        <label for="username">Login:</label>
        <input type="text" id="username" name="username" placeholder="Enter a username" required><br>
        <label for="password">Password:</label>
        <input type="password" id="password" name="password" placeholder="Enter a password" required><br>
        <input type="submit" value="Login"><br>
    </form>
    <a href="/register/">Go to the registration page</a>
`)
}

// RegisterPage serves a minimal HTML registration form.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `
    This page registers new users. After registration you will receive an
    access_token cookie with a JWT and be redirected to the main page.
    <form action="/register/" method="post">
        <label for="username">Username:</label>
        <input type="text" id="username" name="username" placeholder="Enter username" required><br>
        <label for="password">Password:</label>
        <input type="password" id="password" name="password" placeholder="Enter password" required><br>
        <label for="is_admin">Is an Admin? (for test):</label>
        <input type="checkbox" id="is_admin" name="is_admin"><br>
        <input type="submit" value="Register"><br>
    </form>
    <a href="/login/">Go to the login page</a>
`)
}

func parseCredentialsForm(r *http.Request, withAdmin bool) (username, password string, isAdmin bool, err error) {
	if err := r.ParseForm(); err != nil {
		return "", "", false, apperr.New(apperr.UnprocessableQuery, "Malformed form body")
	}
	username = r.PostFormValue("username")
	password = r.PostFormValue("password")
	if username == "" || password == "" {
		return "", "", false, apperr.New(apperr.UnprocessableQuery, "Username and password are required")
	}
	if withAdmin {
		// HTML checkboxes submit "on"; API clients tend to send true/false.
		if v := r.PostFormValue("is_admin"); v != "" {
			if b, perr := strconv.ParseBool(v); perr == nil {
				isAdmin = b
			} else {
				isAdmin = v == "on"
			}
		}
	}
	return username, password, isAdmin, nil
}

func setTokenCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
