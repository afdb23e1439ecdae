package entities

import "time"

// Order is a finalized maintenance booking kept in the resident's order
// store for the lifetime of the session.
//
// Domain notes:
//   - ID is assigned once by the store and never changes across edits.
//   - OrderNo is a display number only. It is not unique.
//   - CreatedAt is set on first insert and preserved by every later upsert.
type Order struct {
	ID         string    `json:"id"`
	OrderNo    string    `json:"order_no"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Unit       string    `json:"unit"`
	AreaKey    string    `json:"area_key"`
	AreaLabel  string    `json:"area_label"`
	Photos     []string  `json:"photos"`
	Conditions []string  `json:"conditions"`
	OtherText  string    `json:"other_text,omitempty"`
	PartHint   string    `json:"part_hint,omitempty"`
	Date       string    `json:"date"`
	Slot       string    `json:"slot"`
	SwapOK     bool      `json:"swap_ok"`
	SwapPref   SwapPref  `json:"swap_pref"`
	RemindOn   bool      `json:"remind_on"`
}

// OrderPayload is what the intake hands to the order store. An empty ID
// asks the store to insert a new order.
type OrderPayload struct {
	ID         string
	OrderNo    string
	Unit       string
	AreaKey    string
	AreaLabel  string
	Photos     []string
	Conditions []string
	OtherText  string
	PartHint   string
	Date       string
	Slot       string
	SwapOK     bool
	SwapPref   SwapPref
	RemindOn   bool
}

// ToOrder materializes the payload under the given identity.
func (p OrderPayload) ToOrder(id string, createdAt, updatedAt time.Time) Order {
	return Order{
		ID:         id,
		OrderNo:    p.OrderNo,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		Unit:       p.Unit,
		AreaKey:    p.AreaKey,
		AreaLabel:  p.AreaLabel,
		Photos:     cloneStrings(p.Photos),
		Conditions: cloneStrings(p.Conditions),
		OtherText:  p.OtherText,
		PartHint:   p.PartHint,
		Date:       p.Date,
		Slot:       p.Slot,
		SwapOK:     p.SwapOK,
		SwapPref:   p.SwapPref,
		RemindOn:   p.RemindOn,
	}
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	o.Photos = cloneStrings(o.Photos)
	o.Conditions = cloneStrings(o.Conditions)
	return o
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
