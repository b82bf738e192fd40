package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/readings"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRepos() *repomanager.MemoryRepositoryManager {
	return repomanager.NewMemoryRepositoryManager()
}

func seedUser(t *testing.T, repos repomanager.RepositoryManager, email, name string, role access.Role) (*models.User, access.Scope) {
	t.Helper()
	u, err := repos.Users().Create(context.Background(), &models.User{Email: email, Name: name, Role: role})
	require.NoError(t, err)
	return u, access.Scope{UserID: u.ID, Email: u.Email, Role: u.Role}
}

type sentMail struct {
	to, subject, body string
}

// fakeTransport records messages and fails for recipients listed in failFor.
type fakeTransport struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]bool
}

func (f *fakeTransport) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[to] {
		return common.ErrTransportFailure
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeTokens struct{ err error }

func (f fakeTokens) Issue(userID, _ string, role access.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID + "-" + string(role), nil
}

// brokenReadings fails every Find.
type brokenReadings struct{ readings.Repository }

func (brokenReadings) Find(context.Context, models.ReadingFilter, models.SortOrder) ([]models.Reading, error) {
	return nil, errors.New("db error: connection reset")
}

type brokenRepos struct {
	*repomanager.MemoryRepositoryManager
}

func (b brokenRepos) Readings() readings.Repository {
	return brokenReadings{b.MemoryRepositoryManager.Readings()}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
