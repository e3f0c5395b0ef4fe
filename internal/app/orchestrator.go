package app

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/events"
	"storefront/internal/view"
)

const submitFailureMessage = "Failed to submit the order. Please try again."

// Orchestrator subscribes to every protocol event, owns the checkout state
// machine, and is the only component allowed to mutate the models or touch
// the views directly.
//
// Locking: gesture events arrive on whatever goroutine the environment calls
// views from, so their handlers take mu. Model change events are only ever
// emitted by model mutators, which the orchestrator itself calls with mu
// already held; their handlers therefore run inside the lock and must not
// take it again. This is what makes a mutation and its change-event delivery
// atomic to every observer.
type Orchestrator struct {
	mu sync.Mutex

	app     *Context
	logger  *zap.Logger
	baseCtx context.Context

	state      State
	submitting bool

	preview      *view.PreviewCard
	basketPanel  *view.BasketPanel
	orderForm    *view.OrderForm
	contactsForm *view.ContactsForm
}

// NewOrchestrator wires the orchestrator onto the context's bus.
func NewOrchestrator(app *Context) *Orchestrator {
	o := &Orchestrator{
		app:     app,
		logger:  app.Logger,
		baseCtx: context.Background(),
		state:   StateBrowsing,
	}
	o.register()
	return o
}

func (o *Orchestrator) register() {
	bus := o.app.Bus

	// Gestures cross a goroutine boundary; serialize them.
	bus.Subscribe(events.NameCardSelect, o.locked(o.onCardSelect))
	bus.Subscribe(events.NameCardAdd, o.locked(o.onCardAdd))
	bus.Subscribe(events.NameCardRemove, o.locked(o.onCardRemove))
	bus.Subscribe(events.NameBasketOpen, o.locked(o.onBasketOpen))
	bus.Subscribe(events.NameBasketRemove, o.locked(o.onBasketRemove))
	bus.Subscribe(events.NameBasketSubmit, o.locked(o.onBasketSubmit))
	bus.Subscribe(events.NameOrderInput, o.locked(o.onOrderInput))
	bus.Subscribe(events.NameOrderSubmit, o.locked(o.onOrderSubmit))
	bus.Subscribe(events.NameContactsInput, o.locked(o.onContactsInput))
	bus.Subscribe(events.NameContactsSubmit, o.locked(o.onContactsSubmit))
	bus.Subscribe(events.NameSuccessClose, o.locked(o.onSuccessClose))

	// Model changes are emitted while mu is already held.
	bus.Subscribe(events.NameCatalogChanged, o.onCatalogChanged)
	bus.Subscribe(events.NameBasketChanged, o.onBasketChanged)
	bus.Subscribe(events.NameBuyerChanged, o.onBuyerChanged)
}

func (o *Orchestrator) locked(h events.Handler) events.Handler {
	return func(e events.Event) {
		o.mu.Lock()
		defer o.mu.Unlock()
		h(e)
	}
}

// Run performs the initial product fetch. A fetch failure leaves the catalog
// at its previous state; the page stays interactive.
func (o *Orchestrator) Run(ctx context.Context) {
	o.mu.Lock()
	o.baseCtx = ctx
	o.mu.Unlock()

	products, err := o.app.Gateway.FetchProducts(ctx)
	if err != nil {
		o.logger.Error("Failed to load products", zap.Error(err))
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.app.Catalog.SetProducts(products)
}

// State returns the current checkout state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// --- gesture handlers ---

func (o *Orchestrator) onCardSelect(e events.Event) {
	ev := e.(events.CardSelect)
	product, ok := o.app.Catalog.ProductByID(ev.ProductID)
	if !ok {
		o.logger.Debug("Selected product is not in the catalog", zap.String("product_id", ev.ProductID))
		return
	}

	o.app.Catalog.SetSelected(product)
	o.showPreview(product)
}

func (o *Orchestrator) onCardAdd(e events.Event) {
	ev := e.(events.CardAdd)
	product, ok := o.app.Catalog.ProductByID(ev.ProductID)
	if !ok {
		o.logger.Debug("Added product is not in the catalog", zap.String("product_id", ev.ProductID))
		return
	}
	if o.app.Basket.HasItem(product.ID) {
		return
	}

	o.app.Basket.AddItem(product)
}

func (o *Orchestrator) onCardRemove(e events.Event) {
	ev := e.(events.CardRemove)
	o.app.Basket.RemoveItem(ev.ProductID)
}

func (o *Orchestrator) onBasketOpen(events.Event) {
	o.showBasket()
}

func (o *Orchestrator) onBasketRemove(e events.Event) {
	ev := e.(events.BasketRemove)
	o.app.Basket.RemoveItem(ev.ProductID)
}

func (o *Orchestrator) onBasketSubmit(events.Event) {
	if o.app.Basket.ItemsCount() == 0 {
		o.logger.Debug("Checkout requested with an empty basket")
		return
	}
	o.showOrderForm()
}

func (o *Orchestrator) onOrderInput(e events.Event) {
	ev := e.(events.OrderInput)
	switch ev.Field {
	case view.FieldPayment:
		method := domain.PaymentMethod(ev.Value)
		o.app.Buyer.SetData(domain.BuyerPatch{Payment: &method})
	case view.FieldAddress:
		value := ev.Value
		o.app.Buyer.SetData(domain.BuyerPatch{Address: &value})
	default:
		o.logger.Debug("Unknown order form field", zap.String("field", ev.Field))
	}
}

func (o *Orchestrator) onOrderSubmit(events.Event) {
	// Re-validate from the model; the form's own flag is never trusted.
	errs := o.app.Buyer.Validate()
	if _, bad := errs[view.FieldPayment]; bad {
		o.syncOrderForm()
		return
	}
	if _, bad := errs[view.FieldAddress]; bad {
		o.syncOrderForm()
		return
	}

	o.showContactsForm()
}

func (o *Orchestrator) onContactsInput(e events.Event) {
	ev := e.(events.ContactsInput)
	switch ev.Field {
	case view.FieldEmail:
		value := ev.Value
		o.app.Buyer.SetData(domain.BuyerPatch{Email: &value})
	case view.FieldPhone:
		value := ev.Value
		o.app.Buyer.SetData(domain.BuyerPatch{Phone: &value})
	default:
		o.logger.Debug("Unknown contacts form field", zap.String("field", ev.Field))
	}
}

func (o *Orchestrator) onContactsSubmit(events.Event) {
	if o.submitting {
		o.logger.Debug("Order submission already in flight")
		return
	}

	errs := o.app.Buyer.Validate()
	if len(errs) > 0 {
		o.logger.Debug("Buyer record is not ready for submission", zap.Int("missing_fields", len(errs)))
		o.syncContactsForm()
		return
	}
	if o.app.Basket.ItemsCount() == 0 {
		o.logger.Debug("Submission requested with an empty basket")
		return
	}

	order := domain.NewOrder(o.app.Buyer.Data(), o.app.Basket.Items())

	o.submitting = true
	o.state = StateSubmitting
	if o.contactsForm != nil {
		o.contactsForm.SetValid(false)
	}

	go o.submit(o.baseCtx, order)
}

func (o *Orchestrator) onSuccessClose(events.Event) {
	o.app.Stage.Modal().Close()
	o.state = StateBrowsing
}

// --- model change handlers (run with mu held by the mutating call) ---

func (o *Orchestrator) onCatalogChanged(e events.Event) {
	ev := e.(events.CatalogChanged)

	cards := make([]*view.CatalogCard, 0, len(ev.Products))
	for _, product := range ev.Products {
		card := o.app.Stage.NewCatalogCard()
		card.Render(product, o.app.ImageBase)
		cards = append(cards, card)
	}

	o.app.Stage.Gallery().SetCards(cards)
	o.app.Stage.Header().SetCounter(o.app.Basket.ItemsCount())
}

func (o *Orchestrator) onBasketChanged(events.Event) {
	o.app.Stage.Header().SetCounter(o.app.Basket.ItemsCount())

	switch o.state {
	case StateBasketView:
		// Keep the open panel in step without a close/reopen cycle.
		o.renderBasketPanel()
	case StateProductDetail:
		if product, ok := o.app.Catalog.Selected(); ok && o.preview != nil {
			o.preview.Render(product, o.app.ImageBase, o.app.Basket.HasItem(product.ID))
		}
	}
}

func (o *Orchestrator) onBuyerChanged(events.Event) {
	switch o.state {
	case StateOrderDetails:
		o.syncOrderForm()
	case StateContactDetails:
		o.syncContactsForm()
	}
}

// --- view plumbing ---

func (o *Orchestrator) showPreview(product domain.Product) {
	card := o.app.Stage.NewPreviewCard()
	card.Render(product, o.app.ImageBase, o.app.Basket.HasItem(product.ID))
	o.openModal(card, StateProductDetail)
}

func (o *Orchestrator) showBasket() {
	panel := o.app.Stage.NewBasketPanel()
	o.openModal(panel, StateBasketView)
	o.renderBasketPanel()
}

func (o *Orchestrator) renderBasketPanel() {
	if o.basketPanel == nil {
		return
	}

	items := o.app.Basket.Items()
	rows := make([]*view.BasketRow, 0, len(items))
	for i, item := range items {
		row := o.app.Stage.NewBasketRow()
		row.Render(item, i+1)
		rows = append(rows, row)
	}

	o.basketPanel.SetRows(rows)
	o.basketPanel.SetTotal(o.app.Basket.TotalPrice())
	o.basketPanel.SetCheckoutEnabled(len(items) > 0)
}

func (o *Orchestrator) showOrderForm() {
	form := o.app.Stage.NewOrderForm()
	o.orderForm = form
	o.openModal(form, StateOrderDetails)
	o.syncOrderForm()
}

func (o *Orchestrator) showContactsForm() {
	form := o.app.Stage.NewContactsForm()
	o.contactsForm = form
	o.openModal(form, StateContactDetails)
	o.syncContactsForm()
}

func (o *Orchestrator) syncOrderForm() {
	if o.orderForm == nil {
		return
	}

	data := o.app.Buyer.Data()
	o.orderForm.SetPayment(data.Payment)
	o.orderForm.SetAddress(data.Address)

	errs := o.app.Buyer.Validate()
	o.orderForm.SetValid(!hasAny(errs, view.FieldPayment, view.FieldAddress))
	o.orderForm.SetErrors(joinErrors(errs, view.FieldPayment, view.FieldAddress))
}

func (o *Orchestrator) syncContactsForm() {
	if o.contactsForm == nil {
		return
	}

	data := o.app.Buyer.Data()
	o.contactsForm.SetEmail(data.Email)
	o.contactsForm.SetPhone(data.Phone)

	errs := o.app.Buyer.Validate()
	o.contactsForm.SetValid(!hasAny(errs, view.FieldEmail, view.FieldPhone))
	o.contactsForm.SetErrors(joinErrors(errs, view.FieldEmail, view.FieldPhone))
}

func (o *Orchestrator) openModal(content any, next State) {
	o.preview = nil
	o.basketPanel = nil
	o.orderForm = nil
	o.contactsForm = nil

	switch v := content.(type) {
	case *view.PreviewCard:
		o.preview = v
	case *view.BasketPanel:
		o.basketPanel = v
	case *view.OrderForm:
		o.orderForm = v
	case *view.ContactsForm:
		o.contactsForm = v
	}

	modal := o.app.Stage.Modal()
	modal.SetContent(content)
	modal.Open()
	o.state = next
}

// --- submission ---

func (o *Orchestrator) submit(ctx context.Context, order domain.Order) {
	resp, err := o.app.Gateway.SubmitOrder(ctx, order)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.submitting = false

	if err != nil {
		o.logger.Error("Order submission failed", zap.Error(err))
		o.showSubmitError()
		return
	}

	o.logger.Info("Order submitted",
		zap.String("order_id", resp.ID),
		zap.Float64("total", resp.Total),
	)
	o.showSuccess(*resp)
}

func (o *Orchestrator) showSubmitError() {
	// Basket and buyer stay intact so a retry needs no re-entry.
	panel := o.app.Stage.NewErrorPanel(o.dismissSubmitError)
	panel.Render(submitFailureMessage)

	modal := o.app.Stage.Modal()
	modal.SetContent(panel)
	modal.Open()
	o.state = StateContactDetails
}

func (o *Orchestrator) dismissSubmitError() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.showContactsForm()
}

func (o *Orchestrator) showSuccess(resp domain.OrderResponse) {
	panel := o.app.Stage.NewSuccessPanel()
	panel.Render(resp)

	o.preview = nil
	o.basketPanel = nil
	o.orderForm = nil
	o.contactsForm = nil

	modal := o.app.Stage.Modal()
	modal.SetContent(panel)
	modal.Open()
	o.state = StateConfirmation

	o.app.Basket.Clear()
	o.app.Buyer.Clear()
}

func hasAny(errs map[string]string, fields ...string) bool {
	for _, field := range fields {
		if _, ok := errs[field]; ok {
			return true
		}
	}
	return false
}

func joinErrors(errs map[string]string, fields ...string) string {
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		if msg, ok := errs[field]; ok {
			messages = append(messages, msg)
		}
	}
	return strings.Join(messages, "; ")
}
