package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	mock_interfaces "resident_service/internal/usecase/interfaces/mocks"
	"resident_service/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type scriptedClient struct {
	mu    sync.Mutex
	calls []string
	reply func(ctx context.Context, prompt string) (string, error)
}

func (c *scriptedClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, prompt)
	reply := c.reply
	c.mu.Unlock()
	return reply(ctx, prompt)
}

func (c *scriptedClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []entities.AdvisoryOutcome
}

func (r *outcomeRecorder) ObserveAdvisory(_ entities.AdvisoryKind, outcome entities.AdvisoryOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *outcomeRecorder) Count(outcome entities.AdvisoryOutcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.outcomes {
		if o == outcome {
			n++
		}
	}
	return n
}

func fridge(conditions ...string) entities.AdvisorySnapshot {
	return entities.AdvisorySnapshot{AreaKey: "refrigerator", Conditions: conditions}
}

// echoReply answers with the conditions found in the prompt.
func echoReply(_ context.Context, prompt string) (string, error) {
	for _, line := range strings.Split(prompt, "\n") {
		if rest, ok := strings.CutPrefix(line, "Reported issues: "); ok {
			return "parts for " + rest, nil
		}
	}
	return "", fmt.Errorf("no issues in prompt")
}

func settled(s *AdvisorySession) func() bool {
	return func() bool { return !s.State().Loading }
}

const waitFor = 2 * time.Second
const tick = 5 * time.Millisecond

func TestAdvisorySession_DebounceCoalesces(t *testing.T) {
	clk := clock.Fake(testNow)
	client := &scriptedClient{reply: echoReply}
	s := NewPartHintSession(client, testCatalog(t), clk, AdvisoryOptions{Debounce: DefaultAdvisoryDebounce})
	defer s.Close()

	s.Update(fridge("Leaking"))
	clk.Advance(200 * time.Millisecond)
	s.Update(fridge("Leaking", "Noise"))
	clk.Advance(200 * time.Millisecond)
	s.Update(fridge("Not cooling"))

	assert.True(t, s.State().Loading)
	assert.Equal(t, "Door gasket / condenser clean", s.State().Text)
	assert.Equal(t, 1, clk.PendingCount())

	clk.Advance(499 * time.Millisecond)
	assert.Empty(t, client.Calls())

	clk.Advance(time.Millisecond)
	require.Eventually(t, settled(s), waitFor, tick)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "Reported issues: Not cooling")
	assert.Equal(t, "parts for Not cooling", s.State().Text)
}

func TestAdvisorySession_SameInputIsNoop(t *testing.T) {
	clk := clock.Fake(testNow)
	client := &scriptedClient{reply: echoReply}
	s := NewPartHintSession(client, testCatalog(t), clk, AdvisoryOptions{Debounce: DefaultAdvisoryDebounce})
	defer s.Close()

	s.Update(fridge("Leaking"))
	clk.Advance(300 * time.Millisecond)
	s.Update(fridge("Leaking"))
	clk.Advance(200 * time.Millisecond)

	require.Eventually(t, settled(s), waitFor, tick)
	s.Update(fridge("Leaking"))
	assert.Equal(t, 0, clk.PendingCount())
	assert.Len(t, client.Calls(), 1)
}

func TestAdvisorySession_LateResultIsDiscarded(t *testing.T) {
	clk := clock.Fake(testNow)
	release := make(chan struct{})
	client := &scriptedClient{reply: func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "Reported issues: Leaking") {
			<-release
			return "late answer", nil
		}
		return echoReply(ctx, prompt)
	}}
	rec := &outcomeRecorder{}
	s := NewPartHintSession(client, testCatalog(t), clk, AdvisoryOptions{Observer: rec})
	defer s.Close()

	s.Update(fridge("Leaking"))
	require.Eventually(t, func() bool { return len(client.Calls()) == 1 }, waitFor, tick)

	s.Update(fridge("Noise"))
	require.Eventually(t, settled(s), waitFor, tick)
	assert.Equal(t, "parts for Noise", s.State().Text)

	close(release)
	require.Eventually(t, func() bool { return rec.Count(entities.AdvisoryStale) == 1 }, waitFor, tick)
	assert.Equal(t, "parts for Noise", s.State().Text)
	assert.Equal(t, 1, rec.Count(entities.AdvisoryCancelled))
	assert.Equal(t, 1, rec.Count(entities.AdvisoryApplied))
}

func TestAdvisorySession_BlankInput(t *testing.T) {
	client := &scriptedClient{reply: echoReply}

	t.Run("part hint uses catalog hint", func(t *testing.T) {
		s := NewPartHintSession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(fridge())
		assert.Equal(t, entities.AdvisoryState{Text: "Door gasket / condenser clean"}, s.State())
	})

	t.Run("part hint without catalog hint prompts", func(t *testing.T) {
		s := NewPartHintSession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(entities.AdvisorySnapshot{AreaKey: "microwave", OtherText: "  "})
		assert.Equal(t, PartHintSelectPrompt, s.State().Text)
	})

	t.Run("summary prompts", func(t *testing.T) {
		s := NewSummarySession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(fridge())
		assert.Equal(t, SummarySelectPrompt, s.State().Text)
	})

	assert.Empty(t, client.Calls())
}

func TestAdvisorySession_BlankSupersedesInflight(t *testing.T) {
	clk := clock.Fake(testNow)
	client := &scriptedClient{reply: func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	rec := &outcomeRecorder{}
	s := NewPartHintSession(client, testCatalog(t), clk, AdvisoryOptions{Debounce: DefaultAdvisoryDebounce, Observer: rec})
	defer s.Close()

	s.Update(fridge("Leaking"))
	clk.Advance(DefaultAdvisoryDebounce)
	require.Eventually(t, func() bool { return len(client.Calls()) == 1 }, waitFor, tick)
	require.True(t, s.State().Loading)

	s.Update(fridge())
	assert.False(t, s.State().Loading)
	assert.Equal(t, 1, rec.Count(entities.AdvisoryCancelled))

	clk.Advance(DefaultAdvisoryDebounce)
	assert.Equal(t, entities.AdvisoryState{Text: "Door gasket / condenser clean"}, s.State())
	assert.Len(t, client.Calls(), 1)
}

func TestAdvisorySession_Failures(t *testing.T) {
	failing := &scriptedClient{reply: func(context.Context, string) (string, error) {
		return "", interfaces.ErrAdvisoryUnavailable
	}}
	empty := &scriptedClient{reply: func(context.Context, string) (string, error) { return "  \n", nil }}

	t.Run("part hint failure falls back to catalog", func(t *testing.T) {
		s := NewPartHintSession(failing, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(fridge("Leaking"))
		require.Eventually(t, settled(s), waitFor, tick)
		assert.Equal(t, entities.AdvisoryState{Text: "Door gasket / condenser clean"}, s.State())
	})

	t.Run("part hint empty answer", func(t *testing.T) {
		s := NewPartHintSession(empty, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(fridge("Leaking"))
		require.Eventually(t, settled(s), waitFor, tick)
		assert.Equal(t, PartHintOnSiteFallback, s.State().Text)
	})

	t.Run("summary failure sets error", func(t *testing.T) {
		s := NewSummarySession(failing, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(fridge("Leaking"))
		require.Eventually(t, settled(s), waitFor, tick)
		assert.Equal(t, entities.AdvisoryState{Err: SummaryUnavailable}, s.State())
	})

	t.Run("summary empty answer", func(t *testing.T) {
		s := NewSummarySession(empty, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()
		s.Update(fridge("Leaking"))
		require.Eventually(t, settled(s), waitFor, tick)
		assert.Equal(t, SummaryNoResponse, s.State().Text)
	})

	t.Run("timeout counts as failure", func(t *testing.T) {
		slow := &scriptedClient{reply: func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}}
		s := NewSummarySession(slow, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{Timeout: 20 * time.Millisecond})
		defer s.Close()
		s.Update(fridge("Leaking"))
		require.Eventually(t, settled(s), waitFor, tick)
		assert.Equal(t, SummaryUnavailable, s.State().Err)
	})
}

func TestAdvisorySession_SummaryPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockIAdvisoryClient(ctrl)

	var prompt string
	client.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return "  1. Check the door seal.\n2. Clean the coils.  ", nil
		}).
		Times(1)

	s := NewSummarySession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
	defer s.Close()

	snap := fridge("Leaking")
	snap.Unit = "Unit 204A"
	snap.PartHint = "Door gasket"
	s.Update(snap)
	require.Eventually(t, settled(s), waitFor, tick)

	assert.Equal(t, "1. Check the door seal.\n2. Clean the coils.", s.State().Text)
	assert.Contains(t, prompt, "The resident of Unit 204A reported a problem")
	assert.Contains(t, prompt, "Reported issues: Leaking")
	assert.Contains(t, prompt, "Parts the technician may bring: Door gasket")
	assert.Contains(t, prompt, "Kitchen: ")
}

func TestAdvisorySession_Cancel(t *testing.T) {
	t.Run("pending input never dispatched", func(t *testing.T) {
		clk := clock.Fake(testNow)
		client := &scriptedClient{reply: echoReply}
		s := NewPartHintSession(client, testCatalog(t), clk, AdvisoryOptions{Debounce: DefaultAdvisoryDebounce})
		defer s.Close()

		s.Update(fridge("Leaking"))
		s.Cancel()
		clk.Advance(time.Second)

		assert.Empty(t, client.Calls())
		assert.False(t, s.State().Loading)
	})

	t.Run("in-flight result dropped", func(t *testing.T) {
		client := &scriptedClient{reply: func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "too late", nil
		}}
		rec := &outcomeRecorder{}
		s := NewSummarySession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{Observer: rec})
		defer s.Close()

		s.Update(fridge("Leaking"))
		require.Eventually(t, func() bool { return len(client.Calls()) == 1 }, waitFor, tick)
		s.Cancel()

		require.Eventually(t, func() bool { return rec.Count(entities.AdvisoryStale) == 1 }, waitFor, tick)
		assert.Equal(t, entities.AdvisoryState{}, s.State())
	})

	t.Run("reentry starts from initial text", func(t *testing.T) {
		client := &scriptedClient{reply: echoReply}
		s := NewPartHintSession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})
		defer s.Close()

		s.Update(fridge("Leaking"))
		require.Eventually(t, settled(s), waitFor, tick)
		s.Cancel()

		s.Update(entities.AdvisorySnapshot{AreaKey: "washer"})
		assert.Equal(t, "New drain pipe / hose", s.State().Text)
	})
}

func TestAdvisorySession_Close(t *testing.T) {
	client := &scriptedClient{reply: func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	s := NewPartHintSession(client, testCatalog(t), clock.Fake(testNow), AdvisoryOptions{})

	s.Update(fridge("Leaking"))
	require.Eventually(t, func() bool { return len(client.Calls()) == 1 }, waitFor, tick)

	s.Close()
	s.Update(fridge("Noise"))

	assert.Len(t, client.Calls(), 1)
	assert.False(t, s.State().Loading)
}
