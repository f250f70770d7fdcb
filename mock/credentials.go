package mock

import (
	"context"

	"github.com/fwojciec/xpatlat"
)

var _ xpatlat.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is a mock implementation of xpatlat.CredentialStore.
type CredentialStore struct {
	LoadFn func(ctx context.Context) ([]*xpatlat.Cookie, error)
	SaveFn func(ctx context.Context, cookies []*xpatlat.Cookie) error
}

func (s *CredentialStore) Load(ctx context.Context) ([]*xpatlat.Cookie, error) {
	return s.LoadFn(ctx)
}

func (s *CredentialStore) Save(ctx context.Context, cookies []*xpatlat.Cookie) error {
	return s.SaveFn(ctx, cookies)
}
