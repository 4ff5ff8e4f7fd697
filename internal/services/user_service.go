package services

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByUsername(username string) (models.User, error)
	CreateUser(username, password string, isAdmin bool) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
}

// UserService persists user accounts and verifies their credentials.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByUsername retrieves a single user by their username, including the
// password hash. The lookup is case-sensitive.
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow(
		"SELECT id, username, hashed_password, is_admin, is_disabled FROM users WHERE username = ?",
		username)
	err := row.Scan(&user.ID, &user.Username, &user.HashedPassword, &user.IsAdmin, &user.IsDisabled)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperr.New(apperr.NotFound, "User %s not found", username)
		}
		return models.User{}, fmt.Errorf("querying user %s: %w", username, err)
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. A taken username is
// a conflict, not a server fault.
func (s *UserService) CreateUser(username, password string, isAdmin bool) (models.User, error) {
	_, err := s.GetUserByUsername(username)
	if err == nil {
		return models.User{}, apperr.New(apperr.Conflict, "Username %s is already taken", username)
	}
	if !apperr.IsKind(err, apperr.NotFound) {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO users(username, hashed_password, is_admin, is_disabled) VALUES(?, ?, ?, ?)",
		username, string(hashedPassword), isAdmin, false)
	if err != nil {
		return models.User{}, fmt.Errorf("inserting user %s: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:       id,
		Username: username,
		IsAdmin:  isAdmin,
	}, nil
}

// AuthenticateUser verifies a user's credentials. The failure never says
// whether the username or the password was wrong.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return models.User{}, apperr.New(apperr.Unauthenticated, "Incorrect username or password")
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return models.User{}, apperr.New(apperr.Unauthenticated, "Incorrect username or password")
	}

	return user, nil
}
