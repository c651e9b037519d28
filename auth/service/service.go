package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/goserg/volunteerhub/auth/storage"
	"github.com/goserg/volunteerhub/auth/users"
	"github.com/goserg/volunteerhub/internal/normalize"
)

const (
	TokenCookie       = "token"
	minPasswordLength = 6
)

type Service struct {
	storage storage.AuthStorage
	cfg     Config
	rules   []compiledRule
}

type compiledRule struct {
	Rule
	path *regexp.Regexp
}

var (
	ErrForbidden          = errors.New("access denied")
	ErrNotAuthorized      = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLength)
)

func New(cfg Config, storage storage.AuthStorage) (*Service, error) {
	s := Service{
		cfg:     cfg,
		storage: storage,
	}
	for _, rule := range cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, fmt.Errorf("auth rule %q: %w", rule.Name, err)
		}
		s.rules = append(s.rules, compiledRule{Rule: rule, path: r})
	}
	if s.cfg.BcryptCost == 0 {
		s.cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &s, nil
}

func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// SignUp stores the password of an already created user.
func (s *Service) SignUp(ctx context.Context, userID uuid.UUID, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.storage.SetSecret(ctx, userID, users.Secret{PasswordHash: hash})
}

// Login matches email the way registration stores it, trimmed and lowercased.
func (s *Service) Login(ctx context.Context, email string, password string) (users.User, error) {
	user, secret, err := s.storage.GetUserSecret(ctx, normalize.Name(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	if len(secret.PasswordHash) == 0 {
		return users.User{}, ErrInvalidCredentials
	}
	err = bcrypt.CompareHashAndPassword(secret.PasswordHash, []byte(password))
	if err != nil {
		return users.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.cfg.Expiration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  now.Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expirationTime, nil
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, string, error) {
	tokenString, expirationTime, err := s.GenerateToken(userID)
	if err != nil {
		return nil, "", err
	}
	return &fiber.Cookie{
		Name:     TokenCookie,
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, tokenString, nil
}

// Auth resolves the token and checks the first rule matching path and
// method. An empty token is a guest, allowed only by "*" rules.
func (s *Service) Auth(ctx context.Context, token string, method string, path string) (users.User, error) {
	user, err := s.getUserFromToken(ctx, token)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}

	for _, rule := range s.rules {
		if !rule.path.MatchString(path) {
			continue
		}
		for _, ruleMethod := range rule.Method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.Allow {
				if role == "*" {
					return user, nil
				}
				if !user.IsGuest() && role == string(user.Role) {
					return user, nil
				}
			}
			if user.IsGuest() {
				return users.User{}, ErrNotAuthorized
			}
			return users.User{}, ErrForbidden
		}
	}
	if user.IsGuest() {
		return users.User{}, ErrNotAuthorized
	}
	return users.User{}, ErrForbidden
}

func (s *Service) getUserFromToken(ctx context.Context, token string) (users.User, error) {
	if token == "" {
		return users.User{}, nil
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if !errors.As(err, &ve) {
			return users.User{}, err
		}
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return users.User{}, errors.New("bad request")
		} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return users.User{}, errors.New("token expired")
		}
		return users.User{}, err
	}
	claims, ok := parsed.Claims.(*jwt.StandardClaims)
	if !ok || !parsed.Valid {
		return users.User{}, errors.New("bad request")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, err
	}
	return s.storage.GetUser(ctx, id)
}
