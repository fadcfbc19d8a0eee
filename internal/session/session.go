package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role codes carried in the session token (ID_ROL).
const (
	RoleMedico     = 1
	RoleAdmin      = 2
	RoleEnfermeria = 3
)

// Session is the logged-in user's data, read by every screen and
// mutated by none of them.
type Session struct {
	Role      int   `json:"ID_ROL"`
	Matricula int64 `json:"MATRICULA"`
}

// Restricted reports whether the role only sees and schedules its own
// appointments (médicos and enfermería work off their own badge).
func (s Session) Restricted() bool {
	return s.Role == RoleMedico || s.Role == RoleEnfermeria
}

// Provider exposes the current session, or absent when nobody logged in.
// Screens must handle the absent case; they fall back to the no-role view.
type Provider interface {
	Current() (Session, bool)
}

// Static is a fixed session, used by tests and by screens constructed
// after a login already resolved.
type Static struct {
	Session Session
	Present bool
}

func (s Static) Current() (Session, bool) {
	return s.Session, s.Present
}

// Absent is a provider with no session.
var Absent Provider = Static{}

type claims struct {
	Role      int   `json:"ID_ROL"`
	Matricula int64 `json:"MATRICULA"`
	jwt.RegisteredClaims
}

// TokenProvider resolves the session from the signed token the login
// flow stored. An empty or invalid token behaves as an absent session.
type TokenProvider struct {
	secret []byte
	token  string
}

func NewTokenProvider(secret, token string) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), token: token}
}

func (p *TokenProvider) Current() (Session, bool) {
	s, err := p.parse()
	if err != nil {
		return Session{}, false
	}
	return s, true
}

func (p *TokenProvider) parse() (Session, error) {
	if p.token == "" {
		return Session{}, fmt.Errorf("no session token")
	}

	var c claims
	_, err := jwt.ParseWithClaims(p.token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse session token: %w", err)
	}

	return Session{Role: c.Role, Matricula: c.Matricula}, nil
}
