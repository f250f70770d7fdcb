package xpatlat

import "context"

// SameSite values accepted in a Cookie.
const (
	SameSiteStrict = "Strict"
	SameSiteLax    = "Lax"
	SameSiteNone   = "None"
)

// Cookie is a single session credential captured from an authenticated
// browser. The JSON shape matches cookie dumps produced by browser automation
// tools, so files written by other tools load unchanged.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`

	// Expires is seconds since the Unix epoch. Zero or negative marks a
	// session cookie.
	Expires  float64 `json:"expires,omitempty"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	SameSite string  `json:"sameSite,omitempty"`
}

// Session reports whether the cookie has no expiry.
func (c *Cookie) Session() bool {
	return c.Expires <= 0
}

// Validate returns an error if the cookie contains invalid fields.
func (c *Cookie) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "cookie name required")
	}
	if c.Domain == "" {
		return Errorf(EINVALID, "cookie %q: domain required", c.Name)
	}
	if c.Path == "" {
		return Errorf(EINVALID, "cookie %q: path required", c.Name)
	}
	switch c.SameSite {
	case "", SameSiteStrict, SameSiteLax, SameSiteNone:
	default:
		return Errorf(EINVALID, "cookie %q: invalid sameSite %q", c.Name, c.SameSite)
	}
	return nil
}

// CredentialStore persists the cookies of a captured login session.
type CredentialStore interface {
	// Load returns the stored cookies in the order they were saved.
	// Returns ECREDENTIAL if the store is missing, unreadable or malformed.
	Load(ctx context.Context) ([]*Cookie, error)

	// Save replaces the stored cookies.
	Save(ctx context.Context, cookies []*Cookie) error
}
