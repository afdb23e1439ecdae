package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	request "resident_service/internal/adapter/http/dto/request"
	response "resident_service/internal/adapter/http/dto/response"
	"resident_service/internal/adapter/http/handlers/mocks"
	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type workflowFixture struct {
	router  *gin.Engine
	session *mocks.MockIResidentSession
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterGinValidators(); err != nil {
		t.Fatalf("validators: %v", err)
	}

	ctrl := gomock.NewController(t)
	manager := mocks.NewMockISessionManager(ctrl)
	session := mocks.NewMockIResidentSession(ctrl)
	manager.EXPECT().Resume("tok").Return(session, nil).AnyTimes()

	h := NewWorkflowHandler()
	r := gin.New()
	authed := r.Group("/v1", RequireSession(manager))
	authed.GET("/workflow", h.GetState)
	authed.PUT("/workflow/area", h.SelectArea)
	authed.POST("/workflow/photos", h.AddPhotos)
	authed.DELETE("/workflow/photos/last", h.RemoveLastPhoto)
	authed.PUT("/workflow/conditions", h.UpdateConditions)
	authed.PUT("/workflow/schedule", h.UpdateSchedule)
	authed.PATCH("/workflow/preferences", h.UpdatePreferences)
	authed.POST("/workflow/next", h.Next)
	authed.POST("/workflow/back", h.Back)
	authed.POST("/workflow/cancel", h.Cancel)
	authed.POST("/workflow/finish", h.Finish)
	authed.POST("/workflow/orders", h.ViewOrders)
	authed.POST("/workflow/new", h.NewRequest)
	authed.POST("/workflow/orders/:id/edit", h.Edit)
	authed.POST("/workflow/save", h.Save)
	authed.POST("/workflow/cancel-order", h.CancelOrder)
	authed.GET("/orders", h.ListOrders)

	return workflowFixture{router: r, session: session}
}

func (f workflowFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeWorkflow(t *testing.T, w *httptest.ResponseRecorder) response.WorkflowResponse {
	t.Helper()
	var body response.WorkflowResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return body
}

func intakeState(step usecase.IntakeStep, view entities.View) usecase.WorkflowState {
	return usecase.WorkflowState{
		SessionID: "sess-1",
		View:      view,
		Step:      step,
		Draft:     &entities.Draft{Unit: "4B"},
		Slots:     entities.Slots,
	}
}

func TestWorkflowHandler_Commands(t *testing.T) {
	t.Run("state", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().State().Return(intakeState(usecase.StepEvidence, entities.ViewIntake1))

		w := f.do(http.MethodGet, "/v1/workflow", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeWorkflow(t, w)
		if body.View != "intake_1" || body.Draft == nil || body.Draft.Unit != "4B" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Orders != nil {
			t.Fatalf("orders are only listed on the order list view")
		}
	})

	t.Run("select area", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().SelectArea("Kitchen", "refrigerator").Return(intakeState(usecase.StepEvidence, entities.ViewIntake1), nil)

		w := f.do(http.MethodPut, "/v1/workflow/area", `{"category":"Kitchen","fixture_key":"refrigerator"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("select area needs category or fixture", func(t *testing.T) {
		f := newWorkflowFixture(t)

		w := f.do(http.MethodPut, "/v1/workflow/area", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("photos", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().AddPhotos([]string{"blob:1", "blob:2"}).Return(intakeState(usecase.StepEvidence, entities.ViewIntake1), nil)

		w := f.do(http.MethodPost, "/v1/workflow/photos", `{"refs":["blob:1","blob:2"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("more than four photos rejected at the edge", func(t *testing.T) {
		f := newWorkflowFixture(t)

		w := f.do(http.MethodPost, "/v1/workflow/photos", `{"refs":["a","b","c","d","e"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("photo limit from session", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().AddPhotos([]string{"blob:5"}).Return(usecase.WorkflowState{}, usecase.ErrPhotoLimitReached)

		w := f.do(http.MethodPost, "/v1/workflow/photos", `{"refs":["blob:5"]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "PHOTO_LIMIT_REACHED" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("remove last photo", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().RemoveLastPhoto().Return(intakeState(usecase.StepEvidence, entities.ViewIntake1), nil)

		w := f.do(http.MethodDelete, "/v1/workflow/photos/last", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("conditions", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().UpdateConditions([]string{"Leaking", "Other"}, "drips at night").
			Return(intakeState(usecase.StepDetails, entities.ViewIntake2), nil)

		w := f.do(http.MethodPut, "/v1/workflow/conditions", `{"conditions":["Leaking","Other"],"other_text":"drips at night"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("condition outside vocabulary", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().UpdateConditions([]string{"Haunted"}, "").Return(usecase.WorkflowState{}, usecase.ErrUnknownCondition)

		w := f.do(http.MethodPut, "/v1/workflow/conditions", `{"conditions":["Haunted"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != usecase.ErrUnknownCondition.Error() {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("schedule", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().UpdateSchedule("2026-03-11", "").Return(intakeState(usecase.StepDetails, entities.ViewIntake2), nil)

		w := f.do(http.MethodPut, "/v1/workflow/schedule", `{"date":"2026-03-11"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("schedule with malformed date", func(t *testing.T) {
		f := newWorkflowFixture(t)

		w := f.do(http.MethodPut, "/v1/workflow/schedule", `{"date":"11/03/2026"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("preferences", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().UpdatePreferences(gomock.Any()).DoAndReturn(func(p usecase.PreferencesUpdate) (usecase.WorkflowState, error) {
			if p.SwapOK == nil || !*p.SwapOK || p.SwapPref == nil || *p.SwapPref != entities.SwapPrefEarly || p.RemindOn != nil {
				return usecase.WorkflowState{}, fmt.Errorf("unexpected update %+v", p)
			}
			return intakeState(usecase.StepDetails, entities.ViewIntake2), nil
		})

		w := f.do(http.MethodPatch, "/v1/workflow/preferences", fmt.Sprintf(`{"swap_ok":true,"swap_pref":%q}`, entities.SwapPrefEarly))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("next blocked by guard", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Next().Return(usecase.WorkflowState{}, usecase.ErrGuardFailed)

		w := f.do(http.MethodPost, "/v1/workflow/next", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "STEP_INCOMPLETE" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("back", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Back().Return(intakeState(usecase.StepEvidence, entities.ViewIntake1), nil)

		w := f.do(http.MethodPost, "/v1/workflow/back", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Cancel().Return(intakeState(usecase.StepEvidence, entities.ViewIntake1), nil)

		w := f.do(http.MethodPost, "/v1/workflow/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("finish lists orders", func(t *testing.T) {
		f := newWorkflowFixture(t)
		created := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
		f.session.EXPECT().Finish().Return(usecase.WorkflowState{
			SessionID: "sess-1",
			View:      entities.ViewOrderList,
			Orders: []entities.Order{{
				ID:        "ord-1",
				OrderNo:   "12345 67890",
				AreaKey:   "refrigerator",
				CreatedAt: created,
				UpdatedAt: created,
			}},
		}, nil)

		w := f.do(http.MethodPost, "/v1/workflow/finish", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeWorkflow(t, w)
		if body.View != "order_list" || len(body.Orders) != 1 || body.Orders[0].OrderNo != "12345 67890" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("view orders from wrong screen", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().ViewOrders().Return(usecase.WorkflowState{}, usecase.ErrInvalidTransition)

		w := f.do(http.MethodPost, "/v1/workflow/orders", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("new request", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().NewRequest().Return(intakeState(usecase.StepEvidence, entities.ViewIntake1), nil)

		w := f.do(http.MethodPost, "/v1/workflow/new", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("edit unknown order", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Edit("ord-9").Return(usecase.WorkflowState{}, usecase.ErrOrderNotFound)

		w := f.do(http.MethodPost, "/v1/workflow/orders/ord-9/edit", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("edit", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Edit("ord-1").Return(intakeState(usecase.StepEditExisting, entities.ViewEditOrder), nil)

		w := f.do(http.MethodPost, "/v1/workflow/orders/ord-1/edit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeWorkflow(t, w); body.Step != "edit_existing" {
			t.Fatalf("unexpected step %q", body.Step)
		}
	})

	t.Run("save", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Save().Return(usecase.WorkflowState{SessionID: "sess-1", View: entities.ViewOrderList}, nil)

		w := f.do(http.MethodPost, "/v1/workflow/save", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeWorkflow(t, w); body.Orders == nil {
			t.Fatalf("order list view always carries an orders array")
		}
	})

	t.Run("cancel order", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().CancelOrder().Return(usecase.WorkflowState{SessionID: "sess-1", View: entities.ViewOrderList}, nil)

		w := f.do(http.MethodPost, "/v1/workflow/cancel-order", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("closed session", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Next().Return(usecase.WorkflowState{}, usecase.ErrSessionClosed)

		w := f.do(http.MethodPost, "/v1/workflow/next", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("list orders", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.session.EXPECT().Orders().Return([]entities.Order{{ID: "ord-1"}, {ID: "ord-2"}})

		w := f.do(http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.OrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 2 || body[1].ID != "ord-2" {
			t.Fatalf("unexpected orders: %+v", body)
		}
	})
}

func TestWorkflowHandler_RequiresSession(t *testing.T) {
	f := newWorkflowFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/workflow/next", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
