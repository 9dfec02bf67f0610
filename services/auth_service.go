package services

import (
	"regexp"
	"strings"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/repository"
)

var phoneDigits = regexp.MustCompile(`^[0-9]{10,15}$`)

// AuthService handles registration, login and the persisted session. The
// admin account is the configured credential pair, checked before the
// stored users and never written to the store.
type AuthService struct {
	Users    *repository.UserRepository
	Sessions *repository.SessionRepository
	Carts    *repository.CartRepository

	AdminUsername string
	AdminPassword string
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, carts *repository.CartRepository, adminUser, adminPass string) *AuthService {
	return &AuthService{
		Users:         users,
		Sessions:      sessions,
		Carts:         carts,
		AdminUsername: adminUser,
		AdminPassword: adminPass,
	}
}

type RegisterIn struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// Register appends a new user with role=user. Username and email must be
// unused; the remaining rules match the storefront's register form.
func (s *AuthService) Register(in RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" {
		return nil, invalid("username", "is required")
	}
	if len(username) < 3 {
		return nil, invalid("username", "must be at least 3 characters")
	}
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if in.Password == "" {
		return nil, invalid("password", "is required")
	}
	if len(in.Password) < 6 {
		return nil, invalid("password", "must be at least 6 characters")
	}
	if in.Phone != "" {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(in.Phone)
		if !phoneDigits.MatchString(cleaned) {
			return nil, invalid("phone", "must be 10-15 digits")
		}
	}

	users, err := s.Users.All()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return nil, ErrDuplicateUsername
		}
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := entity.User{
		Username: username,
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Password: in.Password,
		Role:     entity.RoleUser,
	}
	if err := s.Users.Append(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login establishes and persists a session. The configured admin pair
// wins over stored users, so a registered "admin" user can never shadow
// the real one.
func (s *AuthService) Login(username, password string) (*entity.Session, error) {
	if username == s.AdminUsername && password == s.AdminPassword {
		sess := entity.Session{
			IsLoggedIn: true,
			CurrentUser: entity.User{
				Username: s.AdminUsername,
				Role:     entity.RoleAdmin,
			},
		}
		if err := s.Sessions.Set(sess); err != nil {
			return nil, err
		}
		return &sess, nil
	}

	users, err := s.Users.All()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			snapshot := u
			snapshot.Password = ""
			sess := entity.Session{IsLoggedIn: true, CurrentUser: snapshot}
			if err := s.Sessions.Set(sess); err != nil {
				return nil, err
			}
			return &sess, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session and the departing user's cart.
func (s *AuthService) Logout() error {
	sess, err := s.Sessions.Get()
	if err != nil {
		return err
	}
	if sess.IsLoggedIn {
		if err := s.Carts.Clear(sess.CurrentUser.Username); err != nil {
			return err
		}
	}
	return s.Sessions.Clear()
}

func (s *AuthService) Current() (entity.Session, error) {
	return s.Sessions.Get()
}

type ProfileUpdateIn struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage"`
}

// UpdateProfile rewrites the stored user record. The session snapshot is
// left as taken at login time; only the next login sees the new values.
func (s *AuthService) UpdateProfile(username string, in ProfileUpdateIn) (*entity.User, error) {
	user, err := s.Users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Phone != "" {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(in.Phone)
		if !phoneDigits.MatchString(cleaned) {
			return nil, invalid("phone", "must be 10-15 digits")
		}
		user.Phone = strings.TrimSpace(in.Phone)
	}
	if in.ProfileImage != "" {
		user.ProfileImage = in.ProfileImage
	}
	if _, err := s.Users.Replace(*user); err != nil {
		return nil, err
	}
	return user, nil
}
