package session

import (
	"net/http"
	"time"

	"keycard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// CookieStore persists sessions as an HS256-signed JWT in a cookie.
// The first key signs; any configured key verifies, so keys can be rotated by prepending.
type CookieStore struct {
	name   string
	keys   [][]byte
	maxAge time.Duration
	secure bool
	path   string
	now    func() time.Time
}

// NewCookieStore is the constructor for CookieStore.
func NewCookieStore(cfg *config.Config) (*CookieStore, error) {
	if cfg.Session == nil || len(cfg.Session.Keys) == 0 {
		return nil, errors.New("session signing keys must be provided")
	}

	keys := make([][]byte, 0, len(cfg.Session.Keys))
	for _, key := range cfg.Session.Keys {
		if key == "" {
			return nil, errors.New("session signing keys must not be empty")
		}
		keys = append(keys, []byte(key))
	}

	path := cfg.Session.Path
	if path == "" {
		path = "/"
	}

	return &CookieStore{
		name:   cfg.Session.CookieName,
		keys:   keys,
		maxAge: cfg.Session.MaxAge,
		secure: cfg.Session.Secure,
		path:   path,
		now:    time.Now,
	}, nil
}

// Load reads the session from r. A missing, expired, tampered or foreign-signed cookie
// yields an anonymous session.
func (s *CookieStore) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return NewSession()
	}

	userID, err := s.decode(cookie.Value)
	if err != nil {
		return NewSession()
	}

	return &Session{userID: userID}
}

// Save writes sess to w. An anonymous session expires the cookie.
func (s *CookieStore) Save(w http.ResponseWriter, sess *Session) error {
	if !sess.IsAuthenticated() {
		http.SetCookie(w, s.cookie("", -1))

		return nil
	}

	value, err := s.encode(sess.UserID())
	if err != nil {
		return err
	}

	maxAge := 0
	if s.maxAge > 0 {
		maxAge = int(s.maxAge.Seconds())
	}
	http.SetCookie(w, s.cookie(value, maxAge))

	return nil
}

func (s *CookieStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     s.path,
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *CookieStore) encode(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.maxAge > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.maxAge))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.keys[0])
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session cookie")
	}

	return signed, nil
}

func (s *CookieStore) decode(value string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	var lastErr error
	for _, key := range s.keys {
		claims := &jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil {
			lastErr = err

			continue
		}
		if claims.Subject == "" {
			return "", errors.New("session cookie has no subject")
		}

		return claims.Subject, nil
	}

	return "", errors.Wrap(lastErr, "invalid session cookie")
}
