package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	request "resident_service/internal/adapter/http/dto/request"
	response "resident_service/internal/adapter/http/dto/response"
	"resident_service/internal/adapter/persistence/repository"
	"resident_service/internal/infrastructure/advisory"
	"resident_service/internal/infrastructure/catalog"
	"resident_service/internal/infrastructure/metrics"
	"resident_service/internal/infrastructure/session"
	"resident_service/internal/usecase"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, request.RegisterGinValidators())

	clk := clock.Real()
	cat, err := catalog.Default()
	require.NoError(t, err)
	seed, err := repository.LoadDirectorySeed()
	require.NoError(t, err)
	gateway, err := advisory.NewOpenAIGateway(advisory.Options{Mock: true})
	require.NoError(t, err)
	tokens, err := session.NewJWTIssuer("test-secret", time.Hour, clk)
	require.NoError(t, err)
	reg := metrics.NewRegistry()

	manager := usecase.NewSessionManager(
		usecase.NewAuthUseCase(repository.NewAccountStaticRepository(seed.Accounts)),
		tokens,
		func() interfaces.IOrderStore { return repository.NewOrderMemoryRepository(clk, reg) },
		usecase.ResidentSessionDeps{
			Catalog:          cat,
			Advisory:         gateway,
			Clock:            clk,
			AdvisoryObserver: reg,
			Debounce:         time.Millisecond,
			Timeout:          time.Second,
		},
		reg,
	)
	t.Cleanup(manager.Close)

	return &testServer{router: NewRouter(Dependencies{
		Sessions: manager,
		Resets:   usecase.NewPasswordResetUseCase(repository.NewTenantStaticRepository(seed.Tenants), clk),
		Catalog:  cat,
		Clock:    clk,
		Metrics:  reg.Handler(),
	})}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) workflow(t *testing.T, method, path string, body any) response.WorkflowResponse {
	t.Helper()
	w := s.do(t, method, path, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out response.WorkflowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRouter_Ping(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_BookingFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/v1/sessions", gin.H{"email": "  John@Example.com ", "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var signIn response.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signIn))
	require.NotEmpty(t, signIn.Token)
	assert.Equal(t, "Unit 204A", signIn.Account.Unit)
	assert.Equal(t, "intake_1", signIn.Workflow.View)
	s.token = signIn.Token

	st := s.workflow(t, http.MethodPut, "/v1/workflow/area", gin.H{"category": "Kitchen", "fixture_key": "refrigerator"})
	assert.False(t, st.CanAdvance)

	w = s.do(t, http.MethodPost, "/v1/workflow/next", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	st = s.workflow(t, http.MethodPost, "/v1/workflow/photos", gin.H{"refs": []string{"photo-1.jpg", "photo-2.jpg"}})
	assert.True(t, st.CanAdvance)

	st = s.workflow(t, http.MethodPost, "/v1/workflow/next", nil)
	require.Equal(t, "intake_2", st.View)
	require.NotEmpty(t, st.DateChoices)

	s.workflow(t, http.MethodPut, "/v1/workflow/conditions", gin.H{"conditions": []string{"Leaking"}})
	s.workflow(t, http.MethodPut, "/v1/workflow/schedule", gin.H{"slot": "1–3 PM"})
	s.workflow(t, http.MethodPatch, "/v1/workflow/preferences", gin.H{"swap_ok": true})

	w = s.do(t, http.MethodPatch, "/v1/workflow/preferences", gin.H{"swap_pref": "Early"})
	require.Equal(t, http.StatusConflict, w.Code)

	st = s.workflow(t, http.MethodPost, "/v1/workflow/next", nil)
	require.Equal(t, "intake_3", st.View)
	s.workflow(t, http.MethodPatch, "/v1/workflow/preferences", gin.H{"swap_pref": "Early", "remind_on": true})

	st = s.workflow(t, http.MethodPost, "/v1/workflow/finish", nil)
	require.Equal(t, "order_list", st.View)
	require.Len(t, st.Orders, 1)
	order := st.Orders[0]
	assert.Equal(t, "Kitchen · Refrigerator", order.AreaLabel)
	assert.Equal(t, "1–3 PM", order.Slot)
	assert.True(t, order.SwapOK)
	assert.Equal(t, "Early", order.SwapPref)
	assert.True(t, order.RemindOn)

	st = s.workflow(t, http.MethodPost, "/v1/workflow/orders/"+order.ID+"/edit", nil)
	require.Equal(t, "edit_order", st.View)
	s.workflow(t, http.MethodPut, "/v1/workflow/schedule", gin.H{"slot": "5–7 PM"})
	st = s.workflow(t, http.MethodPost, "/v1/workflow/save", nil)
	require.Len(t, st.Orders, 1)
	assert.Equal(t, "5–7 PM", st.Orders[0].Slot)

	w = s.do(t, http.MethodGet, "/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []response.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	w = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `resident_orders_upserted_total{op="insert"} 1`)

	w = s.do(t, http.MethodDelete, "/v1/sessions/current", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/v1/workflow", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_SignInErrors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/v1/sessions", gin.H{"email": "nobody@example.com", "password": "x"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Account not found. Please check your email.")

	w = s.do(t, http.MethodPost, "/v1/sessions", gin.H{"email": "john@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect password. Please try again.")
}

func TestRouter_PasswordReset(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/v1/password-resets", gin.H{"unit": "unit 204a", "last_name": "smith", "phone_last4": "5308"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ticket response.ResetTicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Len(t, ticket.Code, 6)
	assert.True(t, strings.HasPrefix(ticket.Message, "This temporary password will expire in 1"))

	w = s.do(t, http.MethodPost, "/v1/password-resets", gin.H{"unit": "204A", "last_name": "Smith", "phone_last4": "0000"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Catalog(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/v1/catalog/fixtures/washer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fx response.FixtureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fx))
	assert.Equal(t, "Laundry", fx.Category)
}
