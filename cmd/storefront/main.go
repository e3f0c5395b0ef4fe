package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/gateway"
	"storefront/internal/logger"
	"storefront/internal/model"
	"storefront/internal/view"
)

// consoleHandle is a render target that prints property updates, the
// terminal's stand-in for a UI element.
type consoleHandle struct {
	slot string
}

func (h *consoleHandle) SetText(value string) {
	fmt.Printf("  %-22s %s\n", h.slot, value)
}

func (h *consoleHandle) SetDisabled(disabled bool) {
	if disabled {
		fmt.Printf("  %-22s [disabled]\n", h.slot)
	}
}

func (h *consoleHandle) SetImage(ref string) {
	// Image references are noise on a terminal.
	_ = ref
}

func (h *consoleHandle) SetVisible(visible bool) {
	if h.slot == "modal" {
		if visible {
			fmt.Println("--- modal open ---")
		} else {
			fmt.Println("--- modal closed ---")
		}
	}
}

// consoleScreen resolves every slot to a fresh console handle.
type consoleScreen struct{}

func (consoleScreen) Resolve(slot string) view.Handle {
	return &consoleHandle{slot: slot}
}

func main() {
	// Environment file is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront",
		zap.String("api_url", cfg.Client.APIURL),
		zap.String("env", cfg.Server.Env),
	)

	bus := events.NewBus()
	stage := view.NewStage(consoleScreen{}, bus)

	appCtx := &app.Context{
		Bus:       bus,
		Catalog:   model.NewCatalog(bus),
		Basket:    model.NewBasket(bus),
		Buyer:     model.NewBuyer(bus),
		Gateway:   gateway.NewClient(cfg.Client.APIURL, cfg.Client.Timeout),
		Stage:     stage,
		Logger:    log,
		ImageBase: cfg.Client.CDNURL,
	}

	orchestrator := app.NewOrchestrator(appCtx)
	orchestrator.Run(context.Background())

	runSession(stage, log)
}

func runSession(stage *view.Stage, log *zap.Logger) {
	fmt.Println("Commands: list, open <n>, buy, basket, remove <n>, checkout,")
	fmt.Println("          pay <cash|card>, address <text>, next, email <v>, phone <v>,")
	fmt.Println("          submit, close, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "exit":
			return
		case "list":
			for i, card := range stage.Gallery().Cards() {
				fmt.Printf("  %d) %s\n", i+1, card.ProductID())
			}
		case "open":
			if card, ok := nth(stage.Gallery().Cards(), arg); ok {
				card.Select()
			}
		case "buy":
			if preview, ok := stage.Modal().Content().(*view.PreviewCard); ok {
				preview.Action()
			}
		case "basket":
			stage.Header().OpenBasket()
		case "remove":
			if panel, ok := stage.Modal().Content().(*view.BasketPanel); ok {
				if row, found := nth(panel.Rows(), arg); found {
					row.Remove()
				}
			}
		case "checkout":
			if panel, ok := stage.Modal().Content().(*view.BasketPanel); ok {
				panel.Checkout()
			}
		case "pay":
			if form, ok := stage.Modal().Content().(*view.OrderForm); ok {
				form.Input(view.FieldPayment, arg)
			}
		case "address":
			if form, ok := stage.Modal().Content().(*view.OrderForm); ok {
				form.Input(view.FieldAddress, arg)
			}
		case "next":
			if form, ok := stage.Modal().Content().(*view.OrderForm); ok {
				form.Submit()
			}
		case "email":
			if form, ok := stage.Modal().Content().(*view.ContactsForm); ok {
				form.Input(view.FieldEmail, arg)
			}
		case "phone":
			if form, ok := stage.Modal().Content().(*view.ContactsForm); ok {
				form.Input(view.FieldPhone, arg)
			}
		case "submit":
			if form, ok := stage.Modal().Content().(*view.ContactsForm); ok {
				form.Submit()
			}
		case "close":
			switch content := stage.Modal().Content().(type) {
			case *view.SuccessPanel:
				content.Close()
			case *view.ErrorPanel:
				content.Dismiss()
			default:
				stage.Modal().Close()
			}
		default:
			log.Debug("Unknown command", zap.String("command", cmd))
			fmt.Println("  unknown command")
		}
	}
}

func nth[T any](items []T, arg string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		return zero, false
	}
	return items[n-1], true
}
