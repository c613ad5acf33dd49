package services

import (
	"time"

	"backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the registration endpoint behind an operator
// login. With no operator hash configured the API stays open, like the
// original event-desk deployment.
type AuthService struct {
	Secret       []byte
	OperatorUser string
	OperatorHash string
	TokenTTL     time.Duration
}

func (s AuthService) Enabled() bool {
	return s.OperatorHash != "" && len(s.Secret) > 0
}

// Login checks the operator credentials and issues an HS256 token.
func (s AuthService) Login(username, password string) (string, error) {
	if !s.Enabled() {
		return "", domain.NotFoundError{Resource: "operador"}
	}
	if username != s.OperatorUser {
		return "", domain.ValidationError{Field: "credenciais", Msg: "usuário ou senha inválidos"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.OperatorHash), []byte(password)); err != nil {
		return "", domain.ValidationError{Field: "credenciais", Msg: "usuário ou senha inválidos"}
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "operador",
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates a bearer token issued by Login.
func (s AuthService) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil {
		return domain.ValidationError{Field: "token", Msg: "token inválido ou expirado", Err: err}
	}
	if !token.Valid {
		return domain.ValidationError{Field: "token", Msg: "token inválido"}
	}
	return nil
}
