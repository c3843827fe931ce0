package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	t.Parallel()

	body := []byte(`{"destination":"U123","events":[]}`)
	mac := hmac.New(sha256.New, []byte("channel-secret"))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, Sign("channel-secret", body))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	secret := "channel-secret"
	bodies := [][]byte{
		[]byte(`{"events":[]}`),
		[]byte(`{"events":[{"type":"message","message":{"type":"text","text":"こんにちは 👋"}}]}`),
		{},
	}

	for _, body := range bodies {
		sig := Sign(secret, body)
		assert.True(t, Validate(secret, body, sig), "body %q", body)

		for i := range len(body) * 8 {
			mutated := append([]byte(nil), body...)
			mutated[i/8] ^= 1 << (i % 8)
			assert.False(t, Validate(secret, mutated, sig), "bit %d of %q", i, body)
		}
	}

	t.Run("wrong secret", func(t *testing.T) {
		body := []byte(`{"events":[]}`)
		assert.False(t, Validate("other", body, Sign(secret, body)))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, Validate(secret, []byte(`{}`), ""))
	})

	t.Run("re-encoded body", func(t *testing.T) {
		raw := []byte(`{"events": []}`)
		compact := []byte(`{"events":[]}`)
		assert.False(t, Validate(secret, compact, Sign(secret, raw)))
	})
}
