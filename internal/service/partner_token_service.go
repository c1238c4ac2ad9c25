package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"oyunfor-gateway/config"
	"oyunfor-gateway/internal/adapter/metrics"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

var errNoSigningKey = errors.New("partner private key not configured")

// PartnerTokenService signs the partner authorization tokens presented to
// the identity service and publishes their verification key as a JWKS.
type PartnerTokenService struct {
	partnerID string
	method    jwt.SigningMethod
	key       interface{} // *rsa.PrivateKey or *ecdsa.PrivateKey; nil when unconfigured
	jwks      []byte
	ttl       time.Duration
	now       func() time.Time
	metrics   *metrics.Metrics
}

// NewPartnerTokenService loads the partner keys. A missing private key is
// not an error here; Sign and JWKS report it per request.
func NewPartnerTokenService(cfg config.PartnerConfig, m *metrics.Metrics) (*PartnerTokenService, error) {
	s := &PartnerTokenService{
		partnerID: cfg.ID,
		ttl:       cfg.TokenTTL,
		now:       time.Now,
		metrics:   m,
	}

	switch cfg.SigningAlgorithm {
	case "RS256":
		s.method = jwt.SigningMethodRS256
	case "ES256":
		s.method = jwt.SigningMethodES256
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.SigningAlgorithm)
	}

	if strings.TrimSpace(cfg.PrivateKey) != "" {
		key, err := parsePrivateKey(cfg.PrivateKey, cfg.SigningAlgorithm)
		if err != nil {
			return nil, err
		}
		s.key = key
	}

	var pub jwk.Key
	var err error
	switch {
	case strings.TrimSpace(cfg.PublicKey) != "":
		pub, err = jwk.ParseKey([]byte(formatPEM(cfg.PublicKey, "PUBLIC KEY")), jwk.WithPEM(true))
		if err != nil {
			return nil, fmt.Errorf("parsing partner public key: %w", err)
		}
	case s.key != nil:
		pub, err = jwk.PublicKeyOf(s.key)
		if err != nil {
			return nil, fmt.Errorf("deriving partner public key: %w", err)
		}
	default:
		return s, nil
	}

	s.jwks, err = buildJWKS(pub, cfg.ID, cfg.SigningAlgorithm)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Sign returns a token with header kid=partnerId and claims {partnerId, scope}.
func (s *PartnerTokenService) Sign(ctx context.Context, scope domain.TokenScope) (string, error) {
	if !scope.IsValid() {
		return "", apperror.ErrInvalidScope(string(scope))
	}
	if s.key == nil {
		return "", apperror.ErrTokenSigning(errNoSigningKey)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"partnerId": s.partnerID,
		"scope":     string(scope),
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(s.method, claims)
	token.Header["kid"] = s.partnerID

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", apperror.ErrTokenSigning(err)
	}

	s.metrics.IncTokenIssued(string(scope))
	return signed, nil
}

// JWKS returns the key set document served from the well-known endpoint.
func (s *PartnerTokenService) JWKS() ([]byte, error) {
	if s.jwks == nil {
		return nil, apperror.ErrJWKS(errors.New("partner public key not configured"))
	}
	return s.jwks, nil
}

func buildJWKS(pub jwk.Key, kid, alg string) ([]byte, error) {
	if err := pub.Set(jwk.KeyIDKey, kid); err != nil {
		return nil, fmt.Errorf("setting kid: %w", err)
	}
	if err := pub.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("setting use: %w", err)
	}
	if err := pub.Set(jwk.AlgorithmKey, jwa.SignatureAlgorithm(alg)); err != nil {
		return nil, fmt.Errorf("setting alg: %w", err)
	}

	set := jwk.NewSet()
	if err := set.AddKey(pub); err != nil {
		return nil, fmt.Errorf("building key set: %w", err)
	}
	b, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encoding key set: %w", err)
	}
	return b, nil
}

func parsePrivateKey(raw, alg string) (interface{}, error) {
	parsed, err := jwk.ParseKey([]byte(formatPEM(raw, "PRIVATE KEY")), jwk.WithPEM(true))
	if err != nil {
		return nil, fmt.Errorf("parsing partner private key: %w", err)
	}

	var key interface{}
	if err := parsed.Raw(&key); err != nil {
		return nil, fmt.Errorf("extracting partner private key: %w", err)
	}

	switch k := key.(type) {
	case *rsa.PrivateKey:
		if alg != "RS256" {
			return nil, fmt.Errorf("partner key is RSA but signing algorithm is %s", alg)
		}
	case *ecdsa.PrivateKey:
		if alg != "ES256" || k.Curve != elliptic.P256() {
			return nil, fmt.Errorf("partner key is not a P-256 key for %s", alg)
		}
	default:
		return nil, fmt.Errorf("unsupported partner key type %T", key)
	}
	return key, nil
}

// formatPEM accepts a full PEM block, one with literal "\n" escapes as
// environment variables often carry, or a bare base64 body.
func formatPEM(raw, blockType string) string {
	key := strings.TrimSpace(strings.ReplaceAll(raw, `\n`, "\n"))
	if strings.Contains(key, "-----BEGIN") {
		return key
	}

	body := strings.Join(strings.Fields(key), "")
	var b strings.Builder
	b.WriteString("-----BEGIN " + blockType + "-----\n")
	for len(body) > 64 {
		b.WriteString(body[:64] + "\n")
		body = body[64:]
	}
	b.WriteString(body + "\n")
	b.WriteString("-----END " + blockType + "-----\n")
	return b.String()
}
