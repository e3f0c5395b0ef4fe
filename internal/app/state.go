package app

// State is the orchestrator's position in the checkout flow.
type State int

const (
	StateBrowsing State = iota
	StateProductDetail
	StateBasketView
	StateOrderDetails
	StateContactDetails
	StateSubmitting
	StateConfirmation
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateProductDetail:
		return "product_detail"
	case StateBasketView:
		return "basket_view"
	case StateOrderDetails:
		return "order_details"
	case StateContactDetails:
		return "contact_details"
	case StateSubmitting:
		return "submitting"
	case StateConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}
