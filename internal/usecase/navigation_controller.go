package usecase

import (
	"errors"

	"resident_service/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("transition not allowed from current view")

type payloadRule int

const (
	keepPayload payloadRule = iota
	freshDraft
	selectedOrder
	clearPayload
)

type navRoute struct {
	from  entities.View
	event entities.NavEvent
}

type navTarget struct {
	to      entities.View
	payload payloadRule
}

var navigationTable = map[navRoute]navTarget{
	{entities.ViewSignIn, entities.NavSignedIn}:          {entities.ViewIntake1, freshDraft},
	{entities.ViewSignIn, entities.NavForgotPassword}:    {entities.ViewResetPassword, clearPayload},
	{entities.ViewResetPassword, entities.NavBack}:       {entities.ViewSignIn, clearPayload},
	{entities.ViewResetPassword, entities.NavDone}:       {entities.ViewSignIn, clearPayload},
	{entities.ViewIntake1, entities.NavNext}:             {entities.ViewIntake2, keepPayload},
	{entities.ViewIntake1, entities.NavCancel}:           {entities.ViewOrderList, clearPayload},
	{entities.ViewIntake1, entities.NavViewOrders}:       {entities.ViewOrderList, clearPayload},
	{entities.ViewIntake1, entities.NavSignOut}:          {entities.ViewSignIn, clearPayload},
	{entities.ViewIntake2, entities.NavBack}:             {entities.ViewIntake1, keepPayload},
	{entities.ViewIntake2, entities.NavNext}:             {entities.ViewIntake3, keepPayload},
	{entities.ViewIntake3, entities.NavBack}:             {entities.ViewIntake2, keepPayload},
	{entities.ViewIntake3, entities.NavFinish}:           {entities.ViewOrderList, clearPayload},
	{entities.ViewOrderList, entities.NavNew}:            {entities.ViewIntake1, freshDraft},
	{entities.ViewOrderList, entities.NavEdit}:           {entities.ViewEditOrder, selectedOrder},
	{entities.ViewOrderList, entities.NavSignOut}:        {entities.ViewSignIn, clearPayload},
	{entities.ViewEditOrder, entities.NavBack}:           {entities.ViewOrderList, clearPayload},
	{entities.ViewEditOrder, entities.NavSave}:           {entities.ViewOrderList, clearPayload},
	{entities.ViewEditOrder, entities.NavCancelOrder}:    {entities.ViewOrderList, clearPayload},
}

// NavigationController tracks the active view and the single payload that
// travels with it: the intake of a new booking, or an edit intake built
// from the selected order. Leaving a flow drops its payload.
type NavigationController struct {
	view       entities.View
	intake     *IntakeMachine
	newIntake  func() *IntakeMachine
	editIntake func(entities.Order) *IntakeMachine
}

func NewNavigationController(newIntake func() *IntakeMachine, editIntake func(entities.Order) *IntakeMachine) *NavigationController {
	return &NavigationController{
		view:       entities.ViewSignIn,
		newIntake:  newIntake,
		editIntake: editIntake,
	}
}

func (n *NavigationController) View() entities.View { return n.view }

// Intake returns the payload of the active view, or nil outside the
// intake and edit flows.
func (n *NavigationController) Intake() *IntakeMachine { return n.intake }

func (n *NavigationController) CanFire(event entities.NavEvent) bool {
	_, ok := navigationTable[navRoute{n.view, event}]
	return ok
}

// Fire applies a transition that needs no external payload.
func (n *NavigationController) Fire(event entities.NavEvent) error {
	target, ok := navigationTable[navRoute{n.view, event}]
	if !ok || target.payload == selectedOrder {
		return ErrInvalidTransition
	}
	n.apply(target, nil)
	return nil
}

// Edit opens the given order from the order list.
func (n *NavigationController) Edit(order entities.Order) error {
	target, ok := navigationTable[navRoute{n.view, entities.NavEdit}]
	if !ok {
		return ErrInvalidTransition
	}
	n.apply(target, &order)
	return nil
}

// Reset returns to SignIn from any view and drops the payload. The table
// only offers SignOut outside an open booking; Reset covers teardown
// from everywhere else.
func (n *NavigationController) Reset() {
	n.apply(navTarget{to: entities.ViewSignIn, payload: clearPayload}, nil)
}

func (n *NavigationController) apply(target navTarget, order *entities.Order) {
	switch target.payload {
	case freshDraft:
		n.intake = n.newIntake()
	case selectedOrder:
		n.intake = n.editIntake(*order)
	case clearPayload:
		n.intake = nil
	}
	n.view = target.to
}
