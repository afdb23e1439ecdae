package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"go.uber.org/zap"
)

const DefaultAdvisoryDebounce = 500 * time.Millisecond

// AdvisoryOptions tunes an AdvisorySession. Zero Debounce dispatches on
// every Update; zero Timeout leaves requests unbounded.
type AdvisoryOptions struct {
	Debounce time.Duration
	Timeout  time.Duration
	Logger   *zap.Logger
	Observer interfaces.IAdvisoryObserver
}

// advisoryPolicy holds what differs between advisory kinds.
type advisoryPolicy struct {
	kind    entities.AdvisoryKind
	prompt  func(entities.AdvisorySnapshot) string
	initial func(entities.AdvisorySnapshot) entities.AdvisoryState
	blank   func(entities.AdvisorySnapshot) entities.AdvisoryState
	failed  func(entities.AdvisorySnapshot) entities.AdvisoryState
	empty   func(entities.AdvisorySnapshot) entities.AdvisoryState
}

// advisoryTag identifies the input a request was built from.
type advisoryTag struct {
	generation uint64
	key        string
}

type advisoryRequest struct {
	tag    advisoryTag
	cancel context.CancelFunc
}

// AdvisorySession keeps one advisory text in step with a changing input.
//
// Inputs settle for the debounce period before a request is sent. Each
// request carries the tag of its input and its result is applied only if
// that tag is still current; anything else is dropped as stale. A new
// input, Cancel or Close aborts the request in flight, so at most one
// request per session is ever live.
type AdvisorySession struct {
	policy   advisoryPolicy
	client   interfaces.IAdvisoryClient
	clock    clock.Clock
	debounce time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	observer interfaces.IAdvisoryObserver

	mu       sync.Mutex
	active   bool
	closed   bool
	gen      uint64
	current  advisoryTag
	snapshot entities.AdvisorySnapshot
	timer    *clock.Timer
	inflight *advisoryRequest
	state    entities.AdvisoryState

	wg sync.WaitGroup
}

// NewPartHintSession suggests parts for the Step2 inputs. Without input or
// on failure it falls back to the catalog's static hint.
func NewPartHintSession(client interfaces.IAdvisoryClient, catalog interfaces.IFixtureCatalog, clk clock.Clock, opts AdvisoryOptions) *AdvisorySession {
	staticOr := func(key, fallback string) string {
		if hint := catalog.PartHint(key); hint != "" {
			return hint
		}
		return fallback
	}
	return newAdvisorySession(advisoryPolicy{
		kind:   entities.AdvisoryKindPartHint,
		prompt: func(s entities.AdvisorySnapshot) string { return buildPartHintPrompt(catalog, s) },
		initial: func(s entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Text: staticOr(s.AreaKey, PartHintOnSiteFallback)}
		},
		blank: func(s entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Text: staticOr(s.AreaKey, PartHintSelectPrompt)}
		},
		failed: func(s entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Text: staticOr(s.AreaKey, PartHintOnSiteFallback)}
		},
		empty: func(entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Text: PartHintOnSiteFallback}
		},
	}, client, clk, opts)
}

// NewSummarySession produces troubleshooting tips for the Step3 draft.
// Failures surface as an error string instead of text.
func NewSummarySession(client interfaces.IAdvisoryClient, catalog interfaces.IFixtureCatalog, clk clock.Clock, opts AdvisoryOptions) *AdvisorySession {
	return newAdvisorySession(advisoryPolicy{
		kind:    entities.AdvisoryKindSummary,
		prompt:  func(s entities.AdvisorySnapshot) string { return buildSummaryPrompt(catalog, s) },
		initial: func(entities.AdvisorySnapshot) entities.AdvisoryState { return entities.AdvisoryState{} },
		blank: func(entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Text: SummarySelectPrompt}
		},
		failed: func(entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Err: SummaryUnavailable}
		},
		empty: func(entities.AdvisorySnapshot) entities.AdvisoryState {
			return entities.AdvisoryState{Text: SummaryNoResponse}
		},
	}, client, clk, opts)
}

func newAdvisorySession(policy advisoryPolicy, client interfaces.IAdvisoryClient, clk clock.Clock, opts AdvisoryOptions) *AdvisorySession {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorySession{
		policy:   policy,
		client:   client,
		clock:    clk,
		debounce: opts.Debounce,
		timeout:  opts.Timeout,
		logger:   logger.With(zap.String("kind", string(policy.kind))),
		observer: opts.Observer,
	}
}

func (s *AdvisorySession) Kind() entities.AdvisoryKind { return s.policy.kind }

// State returns the advisory as it should be shown right now.
func (s *AdvisorySession) State() entities.AdvisoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update feeds the latest input. An input equal to the current one is a
// no-op; anything else supersedes the pending or in-flight request.
func (s *AdvisorySession) Update(snap entities.AdvisorySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	key := snap.Key()
	if s.active && key == s.current.key {
		return
	}
	if !s.active {
		s.state = s.policy.initial(snap)
	}

	s.stopTimerLocked()
	s.abortInflightLocked()

	s.gen++
	s.current = advisoryTag{generation: s.gen, key: key}
	s.snapshot = snap
	s.active = true
	if snap.Blank() {
		// Nothing will be requested; the fallback lands when the timer fires.
		s.state.Loading = false
	} else {
		s.state.Loading = true
		s.state.Err = ""
	}

	tag := s.current
	if s.debounce <= 0 {
		s.dispatchLocked(tag)
		return
	}
	s.timer = s.clock.AfterFunc(s.debounce, func() { s.fire(tag) })
}

// Cancel drops the pending input and aborts the request in flight. Its
// result, if it still arrives, is discarded.
func (s *AdvisorySession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Close cancels and waits for the request goroutine to return. Later
// Updates are ignored.
func (s *AdvisorySession) Close() {
	s.mu.Lock()
	s.cancelLocked()
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *AdvisorySession) fire(tag advisoryTag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.active || tag != s.current {
		return
	}
	s.timer = nil
	s.dispatchLocked(tag)
}

func (s *AdvisorySession) dispatchLocked(tag advisoryTag) {
	snap := s.snapshot
	if snap.Blank() {
		s.state = s.policy.blank(snap)
		s.notify(entities.AdvisoryFallback)
		return
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), s.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	req := &advisoryRequest{tag: tag, cancel: cancel}
	s.inflight = req
	s.state.Loading = true

	prompt := s.policy.prompt(snap)
	s.logger.Debug("[advisory][session] dispatch", zap.Uint64("generation", tag.generation), zap.String("area_key", snap.AreaKey))
	s.notify(entities.AdvisoryDispatched)

	s.wg.Add(1)
	go s.run(ctx, req, snap, prompt)
}

func (s *AdvisorySession) run(ctx context.Context, req *advisoryRequest, snap entities.AdvisorySnapshot, prompt string) {
	defer s.wg.Done()
	defer req.cancel()

	text, err := s.client.Generate(ctx, prompt)
	s.complete(req, snap, text, err)
}

func (s *AdvisorySession) complete(req *advisoryRequest, snap entities.AdvisorySnapshot, text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight == req {
		s.inflight = nil
	}
	if s.closed || !s.active || req.tag != s.current {
		s.logger.Debug("[advisory][session] stale result discarded",
			zap.Uint64("generation", req.tag.generation),
			zap.Uint64("current_generation", s.current.generation),
		)
		s.notify(entities.AdvisoryStale)
		return
	}

	if err != nil {
		s.logger.Warn("[advisory][session] request failed", zap.Uint64("generation", req.tag.generation), zap.Error(err))
		s.state = s.policy.failed(snap)
		s.notify(entities.AdvisoryFailed)
		return
	}

	if text = strings.TrimSpace(text); text == "" {
		s.state = s.policy.empty(snap)
	} else {
		s.state = entities.AdvisoryState{Text: text}
	}
	s.notify(entities.AdvisoryApplied)
}

func (s *AdvisorySession) cancelLocked() {
	if !s.active && s.timer == nil && s.inflight == nil {
		return
	}
	s.stopTimerLocked()
	s.abortInflightLocked()
	s.active = false
	s.gen++
	s.current = advisoryTag{generation: s.gen}
	s.state.Loading = false
}

func (s *AdvisorySession) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *AdvisorySession) abortInflightLocked() {
	if s.inflight == nil {
		return
	}
	s.inflight.cancel()
	s.inflight = nil
	s.notify(entities.AdvisoryCancelled)
}

// notify must not call back into the session.
func (s *AdvisorySession) notify(outcome entities.AdvisoryOutcome) {
	if s.observer != nil {
		s.observer.ObserveAdvisory(s.policy.kind, outcome)
	}
}
