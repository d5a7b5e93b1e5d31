package tokens

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testSecret, "HS256", 20*time.Minute)
	require.NoError(t, err)
	return c
}

func TestCodec_IssueDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, exp, err := c.Issue("isejda", 1, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(20*time.Minute), exp, 2*time.Second)

	claims, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "isejda", claims.Subject)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, int64(1), *claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestCodec_WireClaimNames(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, exp, err := c.Issue("isejda", 7, "doctor")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Equal(t, "isejda", raw["sub"])
	assert.EqualValues(t, 7, raw["id"])
	assert.Equal(t, "doctor", raw["role"])
	assert.EqualValues(t, exp.Unix(), raw["exp"])
}

func TestCodec_Decode_Expired(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	token, _, err := c.Issue("isejda", 1, "admin")
	require.NoError(t, err)

	later := c.WithClock(func() time.Time { return time.Now().Add(21 * time.Minute) })
	_, err = later.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_Decode_Rejects(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	valid, _, err := c.Issue("isejda", 1, "admin")
	require.NoError(t, err)

	other, err := NewCodec([]byte("another-secret"), "HS256", time.Minute)
	require.NoError(t, err)
	foreign, _, err := other.Issue("isejda", 1, "admin")
	require.NoError(t, err)

	hs512, err := NewCodec(testSecret, "HS512", time.Minute)
	require.NoError(t, err)
	wrongAlg, _, err := hs512.Issue("isejda", 1, "admin")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "isejda", "id": 1, "role": "admin",
	}).SignedString(testSecret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "isejda", "id": 1, "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-valid-jwt"},
		{name: "tampered signature", token: tampered},
		{name: "wrong secret", token: foreign},
		{name: "wrong algorithm", token: wrongAlg},
		{name: "missing exp", token: noExp},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := c.Decode(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewCodec_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewCodec(nil, "HS256", time.Minute)
	assert.Error(t, err)

	_, err = NewCodec(testSecret, "RS256", time.Minute)
	assert.Error(t, err)

	_, err = NewCodec(testSecret, "HS256", 0)
	assert.Error(t, err)
}

func TestCodec_Encode_RequiresExp(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t)
	id := int64(1)
	_, err := c.Encode(AccessClaims{UserID: &id, Role: "admin"})
	assert.Error(t, err)
}
