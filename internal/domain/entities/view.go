package entities

// View is one screen of the resident workflow.
type View string

const (
	ViewSignIn        View = "sign_in"
	ViewResetPassword View = "reset_password"
	ViewIntake1       View = "intake_1"
	ViewIntake2       View = "intake_2"
	ViewIntake3       View = "intake_3"
	ViewOrderList     View = "order_list"
	ViewEditOrder     View = "edit_order"
)

// NavEvent is a workflow outcome that moves between views.
type NavEvent string

const (
	NavSignedIn       NavEvent = "signed_in"
	NavForgotPassword NavEvent = "forgot_password"
	NavDone           NavEvent = "done"
	NavNext           NavEvent = "next"
	NavBack           NavEvent = "back"
	NavCancel         NavEvent = "cancel"
	NavFinish         NavEvent = "finish"
	NavViewOrders     NavEvent = "view_orders"
	NavNew            NavEvent = "new"
	NavEdit           NavEvent = "edit"
	NavSave           NavEvent = "save"
	NavCancelOrder    NavEvent = "cancel_order"
	NavSignOut        NavEvent = "sign_out"
)
