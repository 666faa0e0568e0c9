package credentials

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"departly/pkg/logger"
)

func testKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

// corrupt models a secret store that re-escaped the blob on the way in:
// every line break in the key becomes the two-character sequence \n.
func corrupt(pemKey string) string {
	return strings.ReplaceAll(pemKey, "\n", `\n`)
}

func testBlob(t *testing.T, privateKey string) []byte {
	t.Helper()
	blob, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   "departly-test",
		"private_key":  privateKey,
		"client_email": "svc@departly-test.iam.gserviceaccount.com",
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	require.NoError(t, err)
	return blob
}

func TestRepairPrivateKeyIdempotent(t *testing.T) {
	pemKey := testKeyPEM(t)

	once := RepairPrivateKey(corrupt(pemKey))
	require.Equal(t, pemKey, once)
	require.Equal(t, once, RepairPrivateKey(once))

	// Already-clean keys pass through untouched.
	require.Equal(t, pemKey, RepairPrivateKey(pemKey))
}

func TestNormalizeRepairsEscapedKey(t *testing.T) {
	pemKey := testKeyPEM(t)
	n := NewNormalizer(logger.NewNop())

	cred, err := n.Normalize(testBlob(t, corrupt(pemKey)))
	require.NoError(t, err)
	require.Equal(t, "departly-test", cred.ProjectID)
	require.Equal(t, "svc@departly-test.iam.gserviceaccount.com", cred.ClientEmail)

	ts, err := cred.TokenSource(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ts)
}

func TestNormalizeCleanKeyPassesThrough(t *testing.T) {
	pemKey := testKeyPEM(t)
	n := NewNormalizer(logger.NewNop())

	cred, err := n.Normalize(testBlob(t, pemKey))
	require.NoError(t, err)

	ts, err := cred.TokenSource(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ts)
}

func TestStringRedactsKeyMaterial(t *testing.T) {
	pemKey := testKeyPEM(t)
	n := NewNormalizer(logger.NewNop())

	cred, err := n.Normalize(testBlob(t, pemKey))
	require.NoError(t, err)

	s := cred.String()
	require.NotContains(t, s, "PRIVATE KEY")
	require.Contains(t, s, "REDACTED")
	require.Contains(t, s, "departly-test")
}

func TestNormalizeScanFallback(t *testing.T) {
	pemKey := testKeyPEM(t)
	n := NewNormalizer(logger.NewNop())

	// Trailing comma makes the blob invalid JSON while every field stays
	// readable in place.
	broken := `{
  "type": "service_account",
  "project_id": "departly-test",
  "private_key": "` + corrupt(pemKey) + `",
  "client_email": "svc@departly-test.iam.gserviceaccount.com",
}`

	cred, err := n.Normalize([]byte(broken))
	require.NoError(t, err)
	require.Equal(t, "departly-test", cred.ProjectID)

	ts, err := cred.TokenSource(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ts)
}

func TestNormalizeFailures(t *testing.T) {
	n := NewNormalizer(logger.NewNop())

	tests := []struct {
		name    string
		blob    string
		wantErr error
	}{
		{
			name:    "garbage blob",
			blob:    "not a credential at all",
			wantErr: ErrUnparsable,
		},
		{
			name:    "valid json without key",
			blob:    `{"project_id": "departly-test"}`,
			wantErr: ErrNoKeyMaterial,
		},
		{
			name:    "key that is not pem",
			blob:    `{"private_key": "-----BEGIN NOTHING-----", "project_id": "p"}`,
			wantErr: ErrKeyInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalize([]byte(tt.blob))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScanFieldsBarePEM(t *testing.T) {
	pemKey := testKeyPEM(t)

	// No JSON structure at all, just a dumped key with metadata around it.
	blob := "credential dump follows\n" + pemKey + "\nend of dump"
	fields := scanFields([]byte(blob))
	require.Contains(t, fields["private_key"], "BEGIN PRIVATE KEY")
	require.Contains(t, fields["private_key"], "END PRIVATE KEY")
}
