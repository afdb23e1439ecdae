package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resident_service/internal/adapter/http/handlers/mocks"
	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSessionHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(m usecase.ISessionManager) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sessions", NewSessionHandler(m).SignIn)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mocks.NewMockISessionManager(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(m).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"missing credentials", usecase.ErrMissingCredentials, http.StatusBadRequest, "INVALID_REQUEST", "Email and password are required"},
		{"unknown account", usecase.ErrAccountNotFound, http.StatusUnauthorized, "ACCOUNT_NOT_FOUND", "Account not found. Please check your email."},
		{"wrong password", usecase.ErrIncorrectPassword, http.StatusUnauthorized, "INCORRECT_PASSWORD", "Incorrect password. Please try again."},
		{"directory down", errors.New("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := mocks.NewMockISessionManager(ctrl)
			m.EXPECT().SignIn(gomock.Any(), "ana@example.com", "pw").Return(usecase.SignInResult{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"email":"ana@example.com","password":"pw"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(m).ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeError(t, w)
			if body.Code != tc.code || body.Message != tc.msg {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mocks.NewMockISessionManager(ctrl)

		expires := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
		m.EXPECT().SignIn(gomock.Any(), "ana@example.com", "pw").Return(usecase.SignInResult{
			Token:     "tok",
			ExpiresAt: expires,
			Account:   entities.Account{Email: "ana@example.com", Name: "Ana", Unit: "4B"},
			State:     usecase.WorkflowState{SessionID: "sess-1", View: entities.ViewIntake1, Step: usecase.StepEvidence},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"email":"ana@example.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(m).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["token"] != "tok" {
			t.Fatalf("unexpected token: %v", body["token"])
		}
		wf, ok := body["workflow"].(map[string]any)
		if !ok || wf["view"] != "intake_1" || wf["step"] != "evidence" {
			t.Fatalf("unexpected workflow: %v", body["workflow"])
		}
		account, ok := body["account"].(map[string]any)
		if !ok || account["unit"] != "4B" {
			t.Fatalf("unexpected account: %v", body["account"])
		}
		if _, leaked := account["password"]; leaked {
			t.Fatalf("password must not be serialized")
		}
	})
}

func TestSessionHandler_SignOut(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(m usecase.ISessionManager) *gin.Engine {
		r := gin.New()
		authed := r.Group("/v1", RequireSession(m))
		authed.DELETE("/sessions/current", NewSessionHandler(m).SignOut)
		return r
	}

	t.Run("missing bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mocks.NewMockISessionManager(ctrl)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/current", nil)
		w := httptest.NewRecorder()
		newRouter(m).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mocks.NewMockISessionManager(ctrl)
		m.EXPECT().Resume("old").Return(nil, interfaces.ErrInvalidSessionToken)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/current", nil)
		req.Header.Set("Authorization", "Bearer old")
		w := httptest.NewRecorder()
		newRouter(m).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNAUTHORIZED" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("signs out resolved session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mocks.NewMockISessionManager(ctrl)
		s := mocks.NewMockIResidentSession(ctrl)
		m.EXPECT().Resume("tok").Return(s, nil)
		m.EXPECT().SignOut("tok").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/current", nil)
		req.Header.Set("Authorization", "bearer tok")
		w := httptest.NewRecorder()
		newRouter(m).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("session closed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := mocks.NewMockISessionManager(ctrl)
		s := mocks.NewMockIResidentSession(ctrl)
		m.EXPECT().Resume("tok").Return(s, nil)
		m.EXPECT().SignOut("tok").Return(usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/current", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		newRouter(m).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"empty":        {"", "", false},
		"scheme only":  {"Bearer", "", false},
		"blank token":  {"Bearer   ", "", false},
		"basic scheme": {"Basic abc", "", false},
		"bearer":       {"Bearer abc", "abc", true},
		"case folded":  {"BEARER abc", "abc", true},
		"padded":       {"  Bearer  abc  ", "abc", true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			if ok != tc.ok || token != tc.token {
				t.Fatalf("bearerToken(%q) = %q, %v", tc.header, token, ok)
			}
		})
	}
}
