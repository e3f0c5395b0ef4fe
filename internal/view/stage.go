package view

import "storefront/internal/events"

// Screen resolves named slots into render handles. Resolving the same slot
// twice yields two independent handles, the way cloning a template would, so
// a fresh card or form gets fresh targets every time.
type Screen interface {
	Resolve(slot string) Handle
}

// Stage assembles the fixed chrome (modal, header, gallery) and manufactures
// the per-opening views. The orchestrator talks to views only through it.
type Stage struct {
	bus     *events.Bus
	screen  Screen
	modal   *Modal
	header  *Header
	gallery *Gallery
}

// NewStage binds the fixed chrome against the screen.
func NewStage(screen Screen, bus *events.Bus) *Stage {
	return &Stage{
		bus:     bus,
		screen:  screen,
		modal:   BindModal(ModalHandles{Container: screen.Resolve("modal")}),
		header:  BindHeader(HeaderHandles{Counter: screen.Resolve("header.counter")}, bus),
		gallery: BindGallery(GalleryHandles{Container: screen.Resolve("gallery")}),
	}
}

// Modal returns the overlay shell.
func (s *Stage) Modal() *Modal { return s.modal }

// Header returns the page header.
func (s *Stage) Header() *Header { return s.header }

// Gallery returns the product gallery.
func (s *Stage) Gallery() *Gallery { return s.gallery }

// NewCatalogCard manufactures a gallery card.
func (s *Stage) NewCatalogCard() *CatalogCard {
	return BindCatalogCard(CatalogCardHandles{
		Title:    s.screen.Resolve("card.title"),
		Category: s.screen.Resolve("card.category"),
		Price:    s.screen.Resolve("card.price"),
		Image:    s.screen.Resolve("card.image"),
	}, s.bus)
}

// NewPreviewCard manufactures a detail view card.
func (s *Stage) NewPreviewCard() *PreviewCard {
	return BindPreviewCard(PreviewCardHandles{
		Title:       s.screen.Resolve("preview.title"),
		Category:    s.screen.Resolve("preview.category"),
		Price:       s.screen.Resolve("preview.price"),
		Image:       s.screen.Resolve("preview.image"),
		Description: s.screen.Resolve("preview.description"),
		Action:      s.screen.Resolve("preview.action"),
	}, s.bus)
}

// NewBasketRow manufactures one basket line item.
func (s *Stage) NewBasketRow() *BasketRow {
	return BindBasketRow(BasketRowHandles{
		Index: s.screen.Resolve("basket.row.index"),
		Title: s.screen.Resolve("basket.row.title"),
		Price: s.screen.Resolve("basket.row.price"),
	}, s.bus)
}

// NewBasketPanel manufactures the basket panel.
func (s *Stage) NewBasketPanel() *BasketPanel {
	return BindBasketPanel(BasketPanelHandles{
		List:     s.screen.Resolve("basket.list"),
		Total:    s.screen.Resolve("basket.total"),
		Checkout: s.screen.Resolve("basket.checkout"),
	}, s.bus)
}

// NewOrderForm manufactures the payment/address form.
func (s *Stage) NewOrderForm() *OrderForm {
	return BindOrderForm(OrderFormHandles{
		Payment: s.screen.Resolve("order.payment"),
		Address: s.screen.Resolve("order.address"),
		Errors:  s.screen.Resolve("order.errors"),
		Submit:  s.screen.Resolve("order.submit"),
	}, s.bus)
}

// NewContactsForm manufactures the email/phone form.
func (s *Stage) NewContactsForm() *ContactsForm {
	return BindContactsForm(ContactsFormHandles{
		Email:  s.screen.Resolve("contacts.email"),
		Phone:  s.screen.Resolve("contacts.phone"),
		Errors: s.screen.Resolve("contacts.errors"),
		Submit: s.screen.Resolve("contacts.submit"),
	}, s.bus)
}

// NewSuccessPanel manufactures the confirmation panel.
func (s *Stage) NewSuccessPanel() *SuccessPanel {
	return BindSuccessPanel(SuccessPanelHandles{
		Description: s.screen.Resolve("success.description"),
	}, s.bus)
}

// NewErrorPanel manufactures the failure panel with its dismiss callback.
func (s *Stage) NewErrorPanel(onDismiss func()) *ErrorPanel {
	return BindErrorPanel(ErrorPanelHandles{
		Message: s.screen.Resolve("error.message"),
	}, onDismiss)
}
