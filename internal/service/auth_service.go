package service

import (
	"errors"
	"time"

	"smartshelfx/internal/model"
	"smartshelfx/internal/store"
	"smartshelfx/internal/ws"
	"smartshelfx/pkg/jwt"
)

var (
	ErrInvalidRole  = errors.New("role must be one of ADMIN, MANAGER, VENDOR")
	ErrEmailMissing = errors.New("email is required")
)

// loginDelay mimics the sign-in latency of the original screens.
const loginDelay = 400 * time.Millisecond

type AuthService interface {
	Login(email string, role model.Role) (*LoginResponse, error)
	Logout()
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type authService struct {
	state *store.State
	wsHub *ws.Hub
}

func NewAuthService(state *store.State, hub *ws.Hub) AuthService {
	return &authService{state: state, wsHub: hub}
}

// Login matches email+role against the roster, or synthesizes an ephemeral
// user when nothing matches. No credential of any kind is checked: the role
// is whatever the caller asserts.
func (s *authService) Login(email string, role model.Role) (*LoginResponse, error) {
	if email == "" {
		return nil, ErrEmailMissing
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	time.Sleep(loginDelay)

	user := s.state.Login(email, role)

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "user_login",
		Message: user.Name + " signed in",
	})

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *authService) Logout() {
	s.state.Logout()
}
