package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/xpatlat"
)

// DefaultCredentialPath is the cookie file used when no path is configured.
const DefaultCredentialPath = "twitter_cookies.json"

// requiredCookieKeys must be present in every stored record.
var requiredCookieKeys = []string{"name", "value", "domain", "path"}

// Ensure CredentialStore implements xpatlat.CredentialStore at compile time.
var _ xpatlat.CredentialStore = (*CredentialStore)(nil)

// CredentialStore implements xpatlat.CredentialStore as a JSON array of
// cookie records in a single file. Saves are atomic: the new content is
// written to a temporary file next to the target and renamed over it.
type CredentialStore struct {
	path string
}

// NewCredentialStore creates a CredentialStore backed by the file at path.
func NewCredentialStore(path string) *CredentialStore {
	if path == "" {
		path = DefaultCredentialPath
	}
	return &CredentialStore{path: path}
}

// Path returns the backing file path.
func (s *CredentialStore) Path() string {
	return s.path
}

// Load reads and validates the stored cookies.
func (s *CredentialStore) Load(ctx context.Context) ([]*xpatlat.Cookie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q not found: run 'xpatlat login' first", s.path)
	} else if err != nil {
		return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "reading cookie file %q: %w", s.path, err)
	}

	var cookies []*xpatlat.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q is not a list of cookie records: %w", s.path, err)
	}
	if cookies == nil {
		return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q is not a list of cookie records", s.path)
	}

	// Decoding leaves absent keys at their zero value, so presence is
	// checked on the raw records. An explicit empty value is allowed.
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q is not a list of cookie records: %w", s.path, err)
	}

	for i, c := range cookies {
		if c == nil {
			return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q: record %d is null", s.path, i)
		}
		for _, key := range requiredCookieKeys {
			if _, ok := records[i][key]; !ok {
				return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q: record %d: missing %q", s.path, i, key)
			}
		}
		if err := c.Validate(); err != nil {
			return nil, xpatlat.Errorf(xpatlat.ECREDENTIAL, "cookie file %q: record %d: %s", s.path, i, xpatlat.ErrorMessage(err))
		}
	}

	return cookies, nil
}

// Save validates cookies and atomically replaces the file content.
// The file is readable by the owner only.
func (s *CredentialStore) Save(ctx context.Context, cookies []*xpatlat.Cookie) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, c := range cookies {
		if c == nil {
			return xpatlat.Errorf(xpatlat.EINVALID, "cookie %d is nil", i)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if cookies == nil {
		cookies = []*xpatlat.Cookie{}
	}

	data, err := json.MarshalIndent(cookies, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
