package response

import (
	"time"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase"
)

type WorkflowResponse struct {
	SessionID   string          `json:"session_id"`
	View        string          `json:"view"`
	Step        string          `json:"step,omitempty"`
	CanAdvance  bool            `json:"can_advance"`
	Draft       *entities.Draft `json:"draft,omitempty"`
	Vocabulary  []string        `json:"vocabulary,omitempty"`
	DateChoices []string        `json:"date_choices,omitempty"`
	Slots       []string        `json:"slots"`
	Orders      []OrderResponse `json:"orders"`
}

type OrderResponse struct {
	ID         string    `json:"id"`
	OrderNo    string    `json:"order_no"`
	Unit       string    `json:"unit"`
	AreaKey    string    `json:"area_key"`
	AreaLabel  string    `json:"area_label"`
	Photos     []string  `json:"photos"`
	Conditions []string  `json:"conditions"`
	OtherText  string    `json:"other_text,omitempty"`
	PartHint   string    `json:"part_hint"`
	Date       string    `json:"date"`
	Slot       string    `json:"slot"`
	SwapOK     bool      `json:"swap_ok"`
	SwapPref   string    `json:"swap_pref"`
	RemindOn   bool      `json:"remind_on"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromWorkflowState(s usecase.WorkflowState) WorkflowResponse {
	r := WorkflowResponse{
		SessionID:   s.SessionID,
		View:        string(s.View),
		Step:        string(s.Step),
		CanAdvance:  s.CanAdvance,
		Draft:       s.Draft,
		Vocabulary:  s.Vocabulary,
		DateChoices: s.DateChoices,
		Slots:       s.Slots,
	}
	if s.View == entities.ViewOrderList {
		r.Orders = FromOrders(s.Orders)
	}
	return r
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		Unit:       o.Unit,
		AreaKey:    o.AreaKey,
		AreaLabel:  o.AreaLabel,
		Photos:     o.Photos,
		Conditions: o.Conditions,
		OtherText:  o.OtherText,
		PartHint:   o.PartHint,
		Date:       o.Date,
		Slot:       o.Slot,
		SwapOK:     o.SwapOK,
		SwapPref:   string(o.SwapPref),
		RemindOn:   o.RemindOn,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
