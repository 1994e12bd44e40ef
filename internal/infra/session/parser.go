// Package session turns bearer credentials into the process-wide session
// context. Claims are read exactly once at the boundary and injected from
// the root; no component reads persisted auth state ad hoc.
package session

import (
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Parser extracts a Session from a raw bearer credential.
type Parser struct {
	verify bool
	secret []byte
}

// NewParser creates a session parser. When verification is disabled the
// claims are decoded without checking the signature; the backend remains
// the authority that rejects forged tokens.
func NewParser(cfg *config.Config) *Parser {
	p := &Parser{}
	if cfg.Session != nil {
		p.verify = cfg.Session.VerifySignature
		p.secret = []byte(cfg.Session.Secret)
	}

	return p
}

// NormalizeToken strips an accidental "Bearer " prefix from a stored token.
func NormalizeToken(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "Bearer ")
}

// ParseBearer builds a Session from a raw credential. The display name and
// role are read from the fullName/roleName claims the auth collaborator
// issues; both are optional.
func (p *Parser) ParseBearer(raw string) (*entity.Session, error) {
	token := NormalizeToken(raw)
	if token == "" {
		return nil, errors.New("empty bearer credential")
	}

	claims := jwt.MapClaims{}
	if p.verify {
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return p.secret, nil
		})
		if err != nil || !parsed.Valid {
			return nil, errors.Wrap(err, "invalid bearer credential")
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, errors.Wrap(err, "malformed bearer credential")
		}
	}

	sess := &entity.Session{Token: token}
	if name, ok := claims["fullName"].(string); ok {
		sess.FullName = name
	}
	if role, ok := claims["roleName"].(string); ok {
		sess.Role = entity.Role(role)
	}

	return sess, nil
}
