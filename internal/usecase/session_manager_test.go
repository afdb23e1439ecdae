package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resident_service/internal/adapter/persistence/repository"
	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	mock_interfaces "resident_service/internal/usecase/interfaces/mocks"
	"resident_service/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lifecycleCounter struct {
	opened, closed int
}

func (c *lifecycleCounter) OrderUpserted(bool) {}
func (c *lifecycleCounter) OrderDeleted()      {}
func (c *lifecycleCounter) SessionOpened()     { c.opened++ }
func (c *lifecycleCounter) SessionClosed()     { c.closed++ }

func newTestSessionManager(t *testing.T) (*SessionManager, *mock_interfaces.MockIAuthProvider, *mock_interfaces.MockISessionTokenIssuer, *lifecycleCounter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock_interfaces.NewMockIAuthProvider(ctrl)
	tokens := mock_interfaces.NewMockISessionTokenIssuer(ctrl)
	advisory := mock_interfaces.NewMockIAdvisoryClient(ctrl)
	advisory.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", interfaces.ErrAdvisoryUnavailable).AnyTimes()

	clk := clock.Fake(testNow)
	counter := &lifecycleCounter{}
	m := NewSessionManager(
		NewAuthUseCase(provider),
		tokens,
		func() interfaces.IOrderStore { return repository.NewOrderMemoryRepository(clk, counter) },
		ResidentSessionDeps{Catalog: testCatalog(t), Advisory: advisory, Clock: clk},
		counter,
	)
	m.newID = func() string { return "sess-1" }
	t.Cleanup(m.Close)
	return m, provider, tokens, counter
}

func TestSessionManager(t *testing.T) {
	john := entities.Account{Email: "john@example.com", Password: "password123", Unit: "Unit 204A"}
	expires := testNow.Add(12 * time.Hour)

	t.Run("sign in opens a session", func(t *testing.T) {
		m, provider, tokens, counter := newTestSessionManager(t)
		provider.EXPECT().Lookup(gomock.Any(), "john@example.com").Return(john, true, nil)
		tokens.EXPECT().Issue("sess-1", "john@example.com").Return("tok", expires, nil)

		res, err := m.SignIn(context.Background(), "john@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
		assert.Equal(t, expires, res.ExpiresAt)
		assert.Equal(t, entities.ViewIntake1, res.State.View)
		assert.Equal(t, "sess-1", res.State.SessionID)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 1, counter.opened)

		tokens.EXPECT().Parse("tok").Return("sess-1", nil)
		s, err := m.Resume("tok")
		require.NoError(t, err)
		assert.Equal(t, "Unit 204A", s.Account().Unit)
	})

	t.Run("failed sign in opens nothing", func(t *testing.T) {
		m, provider, _, counter := newTestSessionManager(t)
		provider.EXPECT().Lookup(gomock.Any(), "john@example.com").Return(john, true, nil)

		_, err := m.SignIn(context.Background(), "john@example.com", "nope")
		assert.ErrorIs(t, err, ErrIncorrectPassword)
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, 0, counter.opened)
	})

	t.Run("sign out drops orders", func(t *testing.T) {
		m, provider, tokens, counter := newTestSessionManager(t)
		provider.EXPECT().Lookup(gomock.Any(), "john@example.com").Return(john, true, nil)
		tokens.EXPECT().Issue("sess-1", "john@example.com").Return("tok", expires, nil)
		tokens.EXPECT().Parse("tok").Return("sess-1", nil).Times(3)

		_, err := m.SignIn(context.Background(), "john@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, m.SignOut("tok"))
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, 1, counter.closed)

		_, err = m.Resume("tok")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, m.SignOut("tok"), ErrSessionNotFound)
	})

	t.Run("bad token", func(t *testing.T) {
		m, _, tokens, _ := newTestSessionManager(t)
		tokens.EXPECT().Parse("garbage").Return("", interfaces.ErrInvalidSessionToken)

		_, err := m.Resume("garbage")
		assert.True(t, errors.Is(err, interfaces.ErrInvalidSessionToken))
	})
}
