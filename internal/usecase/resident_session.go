package usecase

import (
	"errors"
	"sync"
	"time"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"go.uber.org/zap"
)

var (
	ErrNoActiveDraft = errors.New("no booking in progress")
	ErrOrderNotFound = errors.New("order not found")
	ErrSessionClosed = errors.New("session closed")
)

// WorkflowState is what a client needs to render the active view.
type WorkflowState struct {
	SessionID   string
	View        entities.View
	Step        IntakeStep
	CanAdvance  bool
	Draft       *entities.Draft
	Vocabulary  []string
	DateChoices []string
	Slots       []string
	Orders      []entities.Order
}

// PreferencesUpdate changes only the fields that are set.
type PreferencesUpdate struct {
	SwapOK   *bool
	SwapPref *entities.SwapPref
	RemindOn *bool
}

// IResidentSession is the booking workflow of one signed-in resident.
type IResidentSession interface {
	ID() string
	Account() entities.Account
	State() WorkflowState
	Orders() []entities.Order

	SelectArea(category, fixtureKey string) (WorkflowState, error)
	AddPhotos(refs []string) (WorkflowState, error)
	RemoveLastPhoto() (WorkflowState, error)
	UpdateConditions(tags []string, otherText string) (WorkflowState, error)
	UpdateSchedule(date, slot string) (WorkflowState, error)
	UpdatePreferences(p PreferencesUpdate) (WorkflowState, error)

	Next() (WorkflowState, error)
	Back() (WorkflowState, error)
	Cancel() (WorkflowState, error)
	Finish() (WorkflowState, error)
	ViewOrders() (WorkflowState, error)
	NewRequest() (WorkflowState, error)
	Edit(orderID string) (WorkflowState, error)
	Save() (WorkflowState, error)
	CancelOrder() (WorkflowState, error)
}

// ResidentSessionDeps are shared by every resident session.
type ResidentSessionDeps struct {
	Catalog          interfaces.IFixtureCatalog
	Advisory         interfaces.IAdvisoryClient
	Clock            clock.Clock
	Logger           *zap.Logger
	AdvisoryObserver interfaces.IAdvisoryObserver
	Debounce         time.Duration
	Timeout          time.Duration
}

// ResidentSession serializes every workflow command under one mutex. The
// advisory sessions run their requests in the background and are only
// ever called from here, never the other way round.
type ResidentSession struct {
	id      string
	account entities.Account
	catalog interfaces.IFixtureCatalog
	clock   clock.Clock
	logger  *zap.Logger

	mu       sync.Mutex
	closed   bool
	store    interfaces.IOrderStore
	nav      *NavigationController
	partHint *AdvisorySession
	summary  *AdvisorySession
}

var _ IResidentSession = (*ResidentSession)(nil)

// NewResidentSession opens the workflow of a resident who just signed in,
// positioned on a fresh Step1.
func NewResidentSession(id string, account entities.Account, store interfaces.IOrderStore, deps ResidentSessionDeps) *ResidentSession {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session_id", id))

	opts := AdvisoryOptions{
		Debounce: deps.Debounce,
		Timeout:  deps.Timeout,
		Logger:   logger,
		Observer: deps.AdvisoryObserver,
	}
	s := &ResidentSession{
		id:       id,
		account:  account,
		catalog:  deps.Catalog,
		clock:    deps.Clock,
		logger:   logger,
		store:    store,
		partHint: NewPartHintSession(deps.Advisory, deps.Catalog, deps.Clock, opts),
		summary:  NewSummarySession(deps.Advisory, deps.Catalog, deps.Clock, opts),
	}
	s.nav = NewNavigationController(
		func() *IntakeMachine { return NewIntake(account.Unit, s.catalog, s.clock, s.settledPartHint) },
		func(o entities.Order) *IntakeMachine { return NewEditIntake(o, s.catalog, s.clock) },
	)
	_ = s.nav.Fire(entities.NavSignedIn)
	return s
}

func (s *ResidentSession) ID() string { return s.id }

func (s *ResidentSession) Account() entities.Account { return s.account }

func (s *ResidentSession) State() WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *ResidentSession) Orders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.store.List()
}

func (s *ResidentSession) SelectArea(category, fixtureKey string) (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if category != "" {
			if err := m.SelectCategory(category); err != nil {
				return err
			}
		}
		if fixtureKey != "" {
			return m.SelectFixture(fixtureKey)
		}
		return nil
	})
}

// AddPhotos attaches every reference or none: a batch that does not fit
// under the photo cap is rejected whole.
func (s *ResidentSession) AddPhotos(refs []string) (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		n, err := m.AddPhotos(refs...)
		if err != nil {
			return err
		}
		if n < len(refs) {
			return ErrPhotoLimitReached
		}
		return nil
	})
}

func (s *ResidentSession) RemoveLastPhoto() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error { return m.RemoveLastPhoto() })
}

func (s *ResidentSession) UpdateConditions(tags []string, otherText string) (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if err := m.SetConditions(tags); err != nil {
			return err
		}
		return m.SetOtherText(otherText)
	})
}

// UpdateSchedule sets the visit window. Empty values leave the field as is.
func (s *ResidentSession) UpdateSchedule(date, slot string) (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if date != "" {
			if err := m.SetDate(date); err != nil {
				return err
			}
		}
		if slot != "" {
			return m.SetSlot(slot)
		}
		return nil
	})
}

func (s *ResidentSession) UpdatePreferences(p PreferencesUpdate) (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if p.SwapOK != nil {
			if err := m.SetSwapOK(*p.SwapOK); err != nil {
				return err
			}
		}
		if p.SwapPref != nil {
			if err := m.SetSwapPref(*p.SwapPref); err != nil {
				return err
			}
		}
		if p.RemindOn != nil {
			return m.SetRemindOn(*p.RemindOn)
		}
		return nil
	})
}

func (s *ResidentSession) Next() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if !s.nav.CanFire(entities.NavNext) {
			return ErrInvalidTransition
		}
		if err := m.Next(); err != nil {
			return err
		}
		return s.nav.Fire(entities.NavNext)
	})
}

func (s *ResidentSession) Back() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		switch s.nav.View() {
		case entities.ViewIntake2, entities.ViewIntake3:
			if err := m.Back(); err != nil {
				return err
			}
		case entities.ViewEditOrder:
		default:
			return ErrInvalidTransition
		}
		return s.nav.Fire(entities.NavBack)
	})
}

func (s *ResidentSession) Cancel() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if !s.nav.CanFire(entities.NavCancel) {
			return ErrInvalidTransition
		}
		if err := m.Cancel(); err != nil {
			return err
		}
		s.logger.Info("[workflow][usecase] draft discarded")
		return s.nav.Fire(entities.NavCancel)
	})
}

func (s *ResidentSession) Finish() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if !s.nav.CanFire(entities.NavFinish) {
			return ErrInvalidTransition
		}
		payload, err := m.Finish()
		if err != nil {
			return err
		}
		order := s.store.Upsert(payload)
		s.logger.Info("[workflow][usecase] order created",
			zap.String("order_id", order.ID),
			zap.String("order_no", order.OrderNo),
			zap.String("area_key", order.AreaKey),
		)
		return s.nav.Fire(entities.NavFinish)
	})
}

func (s *ResidentSession) ViewOrders() (WorkflowState, error) {
	return s.navigate(entities.NavViewOrders)
}

func (s *ResidentSession) NewRequest() (WorkflowState, error) {
	return s.navigate(entities.NavNew)
}

func (s *ResidentSession) Edit(orderID string) (WorkflowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return WorkflowState{}, ErrSessionClosed
	}
	if !s.nav.CanFire(entities.NavEdit) {
		return s.stateLocked(), ErrInvalidTransition
	}
	order, ok := s.store.GetByID(orderID)
	if !ok {
		return s.stateLocked(), ErrOrderNotFound
	}
	if err := s.nav.Edit(order); err != nil {
		return s.stateLocked(), err
	}
	s.syncAdvisoriesLocked()
	return s.stateLocked(), nil
}

func (s *ResidentSession) Save() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if !s.nav.CanFire(entities.NavSave) {
			return ErrInvalidTransition
		}
		payload, err := m.Save()
		if err != nil {
			return err
		}
		order := s.store.Upsert(payload)
		s.logger.Info("[workflow][usecase] order updated", zap.String("order_id", order.ID))
		return s.nav.Fire(entities.NavSave)
	})
}

func (s *ResidentSession) CancelOrder() (WorkflowState, error) {
	return s.transition(func(m *IntakeMachine) error {
		if !s.nav.CanFire(entities.NavCancelOrder) {
			return ErrInvalidTransition
		}
		id, err := m.CancelOrder()
		if err != nil {
			return err
		}
		s.store.Delete(id)
		s.logger.Info("[workflow][usecase] order cancelled", zap.String("order_id", id))
		return s.nav.Fire(entities.NavCancelOrder)
	})
}

// Close tears the workflow down: advisories are cancelled and awaited and
// the order store is released.
func (s *ResidentSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.partHint.Close()
	s.summary.Close()
	s.nav.Reset()
	s.store = nil
}

// transition runs fn against the active intake and resynchronizes the
// advisories with wherever the workflow ended up. A failing fn leaves the
// intake as it found it.
func (s *ResidentSession) transition(fn func(m *IntakeMachine) error) (WorkflowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return WorkflowState{}, ErrSessionClosed
	}
	m := s.nav.Intake()
	if m == nil {
		return s.stateLocked(), ErrNoActiveDraft
	}
	if err := m.Apply(fn); err != nil {
		return s.stateLocked(), err
	}
	s.syncAdvisoriesLocked()
	return s.stateLocked(), nil
}

func (s *ResidentSession) navigate(event entities.NavEvent) (WorkflowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return WorkflowState{}, ErrSessionClosed
	}
	if err := s.nav.Fire(event); err != nil {
		return s.stateLocked(), err
	}
	s.syncAdvisoriesLocked()
	return s.stateLocked(), nil
}

// syncAdvisoriesLocked feeds each advisory while its view is active and
// cancels it everywhere else.
func (s *ResidentSession) syncAdvisoriesLocked() {
	view := s.nav.View()
	m := s.nav.Intake()

	if view == entities.ViewIntake2 && m != nil {
		s.partHint.Update(m.PartHintSnapshot())
	} else {
		s.partHint.Cancel()
	}

	if view == entities.ViewIntake3 && m != nil {
		s.summary.Update(m.SummarySnapshot())
	} else {
		s.summary.Cancel()
	}
}

// settledPartHint is the part-hint text once it matches the current Step2
// input; "" while a newer answer is pending.
func (s *ResidentSession) settledPartHint() string {
	st := s.partHint.State()
	if st.Loading {
		return ""
	}
	return st.Text
}

func (s *ResidentSession) stateLocked() WorkflowState {
	st := WorkflowState{
		SessionID: s.id,
		View:      s.nav.View(),
		Slots:     append([]string(nil), entities.Slots...),
	}

	if m := s.nav.Intake(); m != nil {
		d := m.Draft()
		switch st.View {
		case entities.ViewIntake2:
			ph := s.partHint.State()
			d.AdvisoryPartHint = ph.Text
			d.AdvisoryPartHintLoading = ph.Loading
		case entities.ViewIntake3:
			sm := s.summary.State()
			d.AdvisorySummary = sm.Text
			d.AdvisorySummaryLoading = sm.Loading
			d.AdvisorySummaryError = sm.Err
		}
		st.Draft = &d
		st.Step = m.Step()
		st.CanAdvance = m.CanAdvance()
		st.Vocabulary = m.Vocabulary()
		st.DateChoices = m.DateChoices()
	}

	if st.View == entities.ViewOrderList && s.store != nil {
		st.Orders = s.store.List()
	}
	return st
}
