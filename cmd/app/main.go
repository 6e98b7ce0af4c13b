package main

import (
	"context"
	"log/slog"
	"os"

	"checkout/cmd"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	runCheckoutWalkthrough(&app, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		Timezone:    os.Getenv("APP_TIMEZONE"),
		PricingFile: os.Getenv("APP_PRICING_FILE"),
	}
}

// runCheckoutWalkthrough exercises the full order flow once so the binary
// doubles as a smoke check: every mutation is reported by the observer in
// application order.
func runCheckoutWalkthrough(app *cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()

	cancel := app.OrderState().Subscribe(func(snap order.Snapshot) {
		logger.Info("order updated",
			"order_id", snap.OrderID,
			"quantity", snap.Quantity,
			"flavor", snap.Flavor,
			"pickup_date", snap.PickupDate,
			"price", snap.Price,
		)
	})
	defer cancel()

	options, err := app.CreateGetPickupOptionsQueryHandler().Handle(ctx, queries.NewGetPickupOptionsQuery())
	if err != nil {
		log.Fatalf("Failed to read pickup options: %v", err)
	}
	logger.Info("pickup options", "labels", options)

	setQuantity, err := commands.NewSetQuantityCommand(5)
	if err != nil {
		log.Fatalf("Failed to build quantity command: %v", err)
	}
	if err = app.CreateSetQuantityCommandHandler().Handle(ctx, setQuantity); err != nil {
		log.Fatalf("Failed to set quantity: %v", err)
	}

	if err = app.CreateSetFlavorCommandHandler().Handle(ctx, commands.NewSetFlavorCommand("chocolate")); err != nil {
		log.Fatalf("Failed to set flavor: %v", err)
	}

	sameDay := commands.NewChoosePickupDateCommand(options[0])
	if err = app.CreateChoosePickupDateCommandHandler().Handle(ctx, sameDay); err != nil {
		log.Fatalf("Failed to choose pickup date: %v", err)
	}

	snapshot, err := app.CreateGetOrderQueryHandler().Handle(ctx, queries.NewGetOrderQuery())
	if err != nil {
		log.Fatalf("Failed to read order: %v", err)
	}
	logger.Info("order ready", "price", snapshot.Price)

	if err = app.CreateResetOrderCommandHandler().Handle(ctx, commands.NewResetOrderCommand()); err != nil {
		log.Fatalf("Failed to reset order: %v", err)
	}
}
