package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

// SignInResult is handed to a resident after a successful sign-in.
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	Account   entities.Account
	State     WorkflowState
}

// ISessionManager owns the resident sessions of the process.
type ISessionManager interface {
	SignIn(ctx context.Context, email, password string) (SignInResult, error)
	Resume(token string) (IResidentSession, error)
	SignOut(token string) error
}

// SessionManager keeps one ResidentSession per sign-in, each with its own
// order store. Nothing outlives the process.
type SessionManager struct {
	auth     IAuthUseCase
	tokens   interfaces.ISessionTokenIssuer
	newStore func() interfaces.IOrderStore
	deps     ResidentSessionDeps
	observer interfaces.IWorkflowObserver
	newID    func() string

	mu       sync.RWMutex
	sessions map[string]*ResidentSession
}

var _ ISessionManager = (*SessionManager)(nil)

func NewSessionManager(
	auth IAuthUseCase,
	tokens interfaces.ISessionTokenIssuer,
	newStore func() interfaces.IOrderStore,
	deps ResidentSessionDeps,
	observer interfaces.IWorkflowObserver,
) *SessionManager {
	return &SessionManager{
		auth:     auth,
		tokens:   tokens,
		newStore: newStore,
		deps:     deps,
		observer: observer,
		newID:    uuid.NewString,
		sessions: make(map[string]*ResidentSession),
	}
}

func (m *SessionManager) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	account, err := m.auth.SignIn(ctx, email, password)
	if err != nil {
		return SignInResult{}, err
	}

	id := m.newID()
	token, expiresAt, err := m.tokens.Issue(id, account.Email)
	if err != nil {
		zap.L().Error("[session][usecase] token issue failed", zap.String("email", account.Email), zap.Error(err))
		return SignInResult{}, err
	}

	session := NewResidentSession(id, account, m.newStore(), m.deps)

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	if m.observer != nil {
		m.observer.SessionOpened()
	}
	zap.L().Info("[session][usecase] signed in", zap.String("session_id", id), zap.String("email", account.Email))

	return SignInResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
		State:     session.State(),
	}, nil
}

// Resume finds the session a token was issued for.
func (m *SessionManager) Resume(token string) (IResidentSession, error) {
	id, err := m.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SignOut closes the session and drops its orders.
func (m *SessionManager) SignOut(token string) error {
	id, err := m.tokens.Parse(token)
	if err != nil {
		return err
	}

	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	session.Close()
	if m.observer != nil {
		m.observer.SessionClosed()
	}
	zap.L().Info("[session][usecase] signed out", zap.String("session_id", id))
	return nil
}

// Close ends every open session. Used on shutdown.
func (m *SessionManager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*ResidentSession)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
		if m.observer != nil {
			m.observer.SessionClosed()
		}
	}
}

// Len reports the number of open sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
