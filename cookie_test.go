package xpatlat_test

import (
	"testing"

	"github.com/fwojciec/xpatlat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookie_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *xpatlat.Cookie {
		return &xpatlat.Cookie{
			Name:     "auth_token",
			Value:    "abc",
			Domain:   ".x.com",
			Path:     "/",
			Expires:  1767225600,
			HTTPOnly: true,
			Secure:   true,
			SameSite: xpatlat.SameSiteNone,
		}
	}

	t.Run("accepts complete cookie", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("accepts empty value", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.Value = ""

		require.NoError(t, c.Validate())
	})

	tests := []struct {
		name   string
		modify func(c *xpatlat.Cookie)
		msg    string
	}{
		{"missing name", func(c *xpatlat.Cookie) { c.Name = "" }, "cookie name required"},
		{"missing domain", func(c *xpatlat.Cookie) { c.Domain = "" }, "domain required"},
		{"missing path", func(c *xpatlat.Cookie) { c.Path = "" }, "path required"},
		{"bad sameSite", func(c *xpatlat.Cookie) { c.SameSite = "strict-ish" }, "invalid sameSite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tt.modify(c)

			err := c.Validate()

			require.Error(t, err)
			assert.Equal(t, xpatlat.EINVALID, xpatlat.ErrorCode(err))
			assert.Contains(t, xpatlat.ErrorMessage(err), tt.msg)
		})
	}
}

func TestCookie_Session(t *testing.T) {
	t.Parallel()

	assert.True(t, (&xpatlat.Cookie{Expires: -1}).Session())
	assert.True(t, (&xpatlat.Cookie{}).Session())
	assert.False(t, (&xpatlat.Cookie{Expires: 1767225600}).Session())
}
