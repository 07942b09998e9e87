package storefake

import "sync"

// FakeStore is an in-memory token store for tests.
type FakeStore struct {
	mu           sync.Mutex
	accessToken  string
	refreshToken string
	identity     []byte

	SetTokensErr   error
	SetIdentityErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accessToken
}

func (f *FakeStore) RefreshToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshToken
}

func (f *FakeStore) Identity() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.identity
}

func (f *FakeStore) SetTokens(accessToken, refreshToken string) error {
	if f.SetTokensErr != nil {
		return f.SetTokensErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessToken = accessToken
	f.refreshToken = refreshToken
	return nil
}

func (f *FakeStore) SetIdentity(record []byte) error {
	if f.SetIdentityErr != nil {
		return f.SetIdentityErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identity = record
	return nil
}

func (f *FakeStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessToken = ""
	f.refreshToken = ""
	f.identity = nil
	return nil
}
