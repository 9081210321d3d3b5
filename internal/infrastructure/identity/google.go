package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
)

const DefaultJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// Verifier checks an external identity assertion. Any failure, including a
// failure to reach the issuer's key endpoint, reports false.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) bool
}

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

type GoogleVerifier struct {
	projectID  string
	jwksURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func CreateNewGoogleVerifier(projectID string, jwksURL string) *GoogleVerifier {
	if jwksURL == "" {
		jwksURL = DefaultJWKSURL
	}

	return &GoogleVerifier{
		projectID:  projectID,
		jwksURL:    jwksURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		keys:       map[string]*rsa.PublicKey{},
	}
}

func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) bool {
	token, err := jwt.Parse(idToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		kid, ok := t.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("token has no kid header")
		}

		return v.signingKey(ctx, kid)
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "VerifyIDToken").Msg("external assertion rejected")
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return false
	}

	if !claims.VerifyIssuer("https://securetoken.google.com/"+v.projectID, true) {
		return false
	}
	if !claims.VerifyAudience(v.projectID, true) {
		return false
	}

	sub, _ := claims["sub"].(string)
	return sub != ""
}

func (v *GoogleVerifier) signingKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := time.Since(v.fetchedAt) < time.Hour
	v.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	key, ok = v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no signing key for kid %s", kid)
	}

	return key, nil
}

func (v *GoogleVerifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks fetch returned status %d", resp.StatusCode)
	}

	var keySet jwks
	if err := json.NewDecoder(resp.Body).Decode(&keySet); err != nil {
		return err
	}

	keys := map[string]*rsa.PublicKey{}
	for _, k := range keySet.Keys {
		if k.Kty != "RSA" {
			continue
		}

		pub, err := parseRSAKey(k)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "refreshKeys").Str("kid", k.Kid).Msg("skipping unparseable key")
			continue
		}
		keys[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()

	return nil
}

func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
