// Package identity manages user accounts and the singleton session:
// registration, login/logout, and resolution of the current user.
package identity

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// emailPattern accepts local@domain.tld shapes. Client-side hygiene,
// not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service defines all identity and session operations
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, bool)
	Users(ctx context.Context) []models.User
}

// RegisterRequest encapsulates all data needed to register a user
type RegisterRequest struct {
	Name      string
	Email     string
	Password  string
	Password2 string
}

// service implements Service over the key-value store
type service struct {
	store store.Store
	bus   events.Publisher
}

// NewService creates a new identity service
func NewService(s store.Store, bus events.Publisher) Service {
	return &service{store: s, bus: bus}
}

// Register validates the request, creates the user with a bcrypt
// password hash, and establishes the session. The new user becomes the
// single logged-in account: every other LoggedIn flag is cleared.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	verrs := ValidationErrors{}
	if name == "" {
		verrs[FieldName] = "name is required"
	}
	if !emailPattern.MatchString(email) {
		verrs[FieldEmail] = "invalid email address"
	}
	if len(req.Password) < MinPasswordLength {
		verrs[FieldPassword] = fmt.Sprintf("at least %d characters", MinPasswordLength)
	}
	if req.Password != req.Password2 {
		verrs[FieldPassword2] = "passwords do not match"
	}

	users := s.Users(ctx)
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			verrs[FieldEmail] = "email is already registered"
			break
		}
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           models.NewUserID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		LoggedIn:     true,
	}

	for i := range users {
		users[i].LoggedIn = false
	}
	users = append(users, user)

	if err := store.SaveValue(ctx, s.store, store.KeyUsers, users); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, user.ID); err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventUserRegistered, events.UserPayload{User: &user}))
	s.bus.Emit(events.New(events.EventUserLoggedIn, events.UserPayload{User: &user}))
	return &user, nil
}

// Login authenticates by email and password. Bad credentials yield a
// single general message: the caller cannot tell an unknown email from
// a wrong password.
func (s *service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	verrs := ValidationErrors{}
	if !emailPattern.MatchString(email) {
		verrs[FieldEmail] = "invalid email address"
	}
	if len(password) < MinPasswordLength {
		verrs[FieldPassword] = fmt.Sprintf("at least %d characters", MinPasswordLength)
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	users := s.Users(ctx)

	match := -1
	for i, u := range users {
		if normalizeEmail(u.Email) != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			match = i
		}
		break
	}
	if match < 0 {
		return nil, ValidationErrors{FieldGeneral: "invalid credentials"}
	}

	for i := range users {
		users[i].LoggedIn = i == match
	}
	user := users[match]

	if err := store.SaveValue(ctx, s.store, store.KeyUsers, users); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, user.ID); err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventUserLoggedIn, events.UserPayload{User: &user}))
	return &user, nil
}

// Logout clears the session user's flag and removes the session. An
// absent session is a no-op.
func (s *service) Logout(ctx context.Context) error {
	session := store.Load(ctx, s.store, store.KeySession, models.Session{})
	if session.UserID != "" {
		err := store.Patch(ctx, s.store, store.KeyUsers, []models.User{}, func(users []models.User) []models.User {
			for i := range users {
				if users[i].ID == session.UserID {
					users[i].LoggedIn = false
				}
			}
			return users
		})
		if err != nil {
			return err
		}
	}

	if err := s.store.Remove(ctx, store.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.bus.Emit(events.New(events.EventUserLoggedOut, events.UserPayload{}))
	return nil
}

// CurrentUser resolves the session to its user. A dangling session
// (user no longer present) reads as absent.
func (s *service) CurrentUser(ctx context.Context) (*models.User, bool) {
	session := store.Load(ctx, s.store, store.KeySession, models.Session{})
	if session.UserID == "" {
		return nil, false
	}

	users := store.Load(ctx, s.store, store.KeyUsers, []models.User{})
	for i := range users {
		if users[i].ID == session.UserID {
			return &users[i], true
		}
	}
	return nil, false
}

// Users returns all registered users.
func (s *service) Users(ctx context.Context) []models.User {
	return store.Load(ctx, s.store, store.KeyUsers, []models.User{})
}

func (s *service) setSession(ctx context.Context, userID string) error {
	return store.SaveValue(ctx, s.store, store.KeySession, models.Session{UserID: userID})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
