// Package app owns the checkout flow: an explicit application context built
// once at startup and the orchestrator that sequences events, model mutation
// and view updates. No other component calls a model's mutating methods.
package app

import (
	"go.uber.org/zap"

	"storefront/internal/events"
	"storefront/internal/gateway"
	"storefront/internal/model"
	"storefront/internal/view"
)

// Context carries the process-wide collaborators for one page session. It is
// constructed once and passed by reference; there is no ambient state.
type Context struct {
	Bus     *events.Bus
	Catalog *model.Catalog
	Basket  *model.Basket
	Buyer   *model.Buyer
	Gateway gateway.Client
	Stage   *view.Stage
	Logger  *zap.Logger

	// ImageBase prefixes every product image reference, the CDN root.
	ImageBase string
}
