package google

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	googleJWKSURL    = "https://www.googleapis.com/oauth2/v3/certs"
	jwksRefreshAfter = time.Hour
	jwksFetchTimeout = 10 * time.Second
)

type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// jwksCache holds the RSA public keys published at a JWKS endpoint, keyed
// by kid. Keys are refetched after jwksRefreshAfter, and once eagerly when
// an unknown kid shows up (Google rotates keys without notice).
type jwksCache struct {
	url    string
	client *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// newJWKSKeyfunc returns a jwt.Keyfunc resolving signing keys from the
// given JWKS endpoint.
func newJWKSKeyfunc(url string) jwt.Keyfunc {
	cache := &jwksCache{
		url:    url,
		client: &http.Client{Timeout: jwksFetchTimeout},
	}

	return cache.keyFor
}

func (c *jwksCache) keyFor(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token header has no kid")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if key, ok := c.keys[kid]; ok && time.Since(c.fetchedAt) < jwksRefreshAfter {
		return key, nil
	}

	if err := c.refreshLocked(); err != nil {
		return nil, err
	}

	key, ok := c.keys[kid]
	if !ok {
		return nil, errors.Errorf("no signing key for kid %s", kid)
	}

	return key, nil
}

func (c *jwksCache) refreshLocked() error {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return errors.Wrap(err, "failed to fetch JWKS")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return errors.Wrap(err, "failed to decode JWKS document")
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, raw := range doc.Keys {
		if raw.Kty != "RSA" || raw.Kid == "" {
			continue
		}

		key, err := raw.publicKey()
		if err != nil {
			return errors.Wrapf(err, "failed to parse JWKS key %s", raw.Kid)
		}
		keys[raw.Kid] = key
	}

	if len(keys) == 0 {
		return errors.New("JWKS document contains no usable RSA keys")
	}

	c.keys = keys
	c.fetchedAt = time.Now()

	return nil
}

func (k jwksKey) publicKey() (*rsa.PublicKey, error) {
	modulus, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, errors.Wrap(err, "invalid modulus encoding")
	}

	exponent, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, errors.Wrap(err, "invalid exponent encoding")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(modulus),
		E: int(new(big.Int).SetBytes(exponent).Int64()),
	}, nil
}
