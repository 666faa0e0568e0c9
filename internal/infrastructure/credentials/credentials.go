// internal/infrastructure/credentials/credentials.go
package credentials

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"departly/pkg/logger"
)

// datastoreScope grants Firestore document access.
const datastoreScope = "https://www.googleapis.com/auth/datastore"

const defaultTokenURI = "https://oauth2.googleapis.com/token"

var (
	// ErrUnparsable means neither the strict decode nor the scan fallback
	// could read the blob.
	ErrUnparsable = errors.New("credential blob is unparsable")
	// ErrNoKeyMaterial means the blob carried no private_key field.
	ErrNoKeyMaterial = errors.New("credential has no private key")
	// ErrKeyInvalid means the key failed PEM or PKCS parsing after repair.
	ErrKeyInvalid = errors.New("private key is invalid after repair")
)

// ServiceCredential is a repaired, validated service-account identity. The
// key material stays unexported and is redacted from String output.
type ServiceCredential struct {
	ProjectID   string
	ClientEmail string
	raw         []byte
}

// String identifies the credential without exposing key material.
func (c *ServiceCredential) String() string {
	return fmt.Sprintf("ServiceCredential{project=%s, client=%s, key=REDACTED}", c.ProjectID, c.ClientEmail)
}

// TokenSource builds a JWT token source scoped for Firestore access.
func (c *ServiceCredential) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	cfg, err := google.JWTConfigFromJSON(c.raw, datastoreScope)
	if err != nil {
		return nil, fmt.Errorf("failed to build jwt config: %w", err)
	}
	return cfg.TokenSource(ctx), nil
}

// Normalizer repairs service-account blobs whose private key arrives with
// the two-character sequence \n instead of real line breaks. Secret stores
// that re-escape values on the way in produce exactly that corruption, and
// an unrepaired key does not fail fast: the token exchange hangs until the
// transport gives up.
type Normalizer struct {
	logger logger.Logger
}

// NewNormalizer creates a new credential normalizer
func NewNormalizer(logger logger.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize parses raw, repairs the private key, validates it and returns
// the credential. Failures here are startup-fatal for Firestore-backed
// deployments; error text never includes key material.
func (n *Normalizer) Normalize(raw []byte) (*ServiceCredential, error) {
	fields, err := n.parseBlob(raw)
	if err != nil {
		return nil, err
	}
	return n.NormalizeFields(fields)
}

// NormalizeFields runs the repair and validation steps on an already-parsed
// field map.
func (n *Normalizer) NormalizeFields(fields map[string]string) (*ServiceCredential, error) {
	key := fields["private_key"]
	if key == "" {
		return nil, ErrNoKeyMaterial
	}

	repaired := RepairPrivateKey(key)
	if repaired != key {
		n.logger.Info("Repaired escaped newlines in service-account private key")
	}
	if err := validateKey(repaired); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyInvalid, err)
	}

	out := make(map[string]string, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out["private_key"] = repaired
	if out["type"] == "" {
		out["type"] = "service_account"
	}
	if out["token_uri"] == "" {
		out["token_uri"] = defaultTokenURI
	}

	normalized, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode credential: %w", err)
	}

	return &ServiceCredential{
		ProjectID:   out["project_id"],
		ClientEmail: out["client_email"],
		raw:         normalized,
	}, nil
}

// parseBlob tries a strict JSON decode first and falls back to delimiter
// scanning when the blob is structurally broken but still carries the
// fields verbatim.
func (n *Normalizer) parseBlob(raw []byte) (map[string]string, error) {
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err == nil {
		fields := make(map[string]string, len(decoded))
		for k, v := range decoded {
			if s, ok := v.(string); ok {
				fields[k] = s
			}
		}
		return fields, nil
	}

	n.logger.Warn("Credential blob is not valid JSON, falling back to field scan")
	fields := scanFields(raw)
	if len(fields) == 0 {
		return nil, ErrUnparsable
	}
	return fields, nil
}

// RepairPrivateKey rewrites literal \n sequences into real line breaks.
// Keys that are already well-formed pass through unchanged, so the repair
// is idempotent.
func RepairPrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// validateKey proves the repaired key parses as PEM plus PKCS#8 or PKCS#1,
// so a broken key fails at startup instead of hanging the first token
// exchange.
func validateKey(key string) error {
	block, _ := pem.Decode([]byte(key))
	if block == nil {
		return errors.New("no PEM block found")
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return nil
	}
	if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return nil
	}
	return errors.New("PEM block is not a PKCS#8 or PKCS#1 private key")
}

// Load reads the credential blob from inline JSON or a file path, inline
// winning when both are set.
func Load(inline, file string) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read credential file: %w", err)
		}
		return raw, nil
	}
	return nil, errors.New("no credential source configured")
}
