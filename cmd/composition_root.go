package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"checkout/internal/adapters/out/memory"
	"checkout/internal/adapters/out/yamlcfg"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

type CompositionRoot struct {
	clock       kernel.Clock
	tariff      order.Tariff
	stateHolder *memory.StateHolder
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	location := time.Local
	if config.Timezone != "" {
		loaded, err := time.LoadLocation(config.Timezone)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
		}
		location = loaded
	}
	clock := kernel.NewSystemClock(location)

	tariff, err := yamlcfg.LoadTariff(config.PricingFile)
	if err != nil {
		return CompositionRoot{}, err
	}

	factory := func() (*order.Order, error) {
		schedule, scheduleErr := order.NewPickupSchedule(clock)
		if scheduleErr != nil {
			return nil, scheduleErr
		}
		return order.NewOrder(kernel.NewUUID(), schedule, tariff)
	}

	stateHolder, err := memory.NewStateHolder(factory, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		clock:       clock,
		tariff:      tariff,
		stateHolder: stateHolder,
	}, nil
}

// OrderState exposes the holder for observer registration.
func (c *CompositionRoot) OrderState() ports.OrderState {
	return c.stateHolder
}

func (c *CompositionRoot) CreateSetQuantityCommandHandler() commands.SetQuantityCommandHandler {
	return commands.NewSetQuantityCommandHandler(c.stateHolder)
}

func (c *CompositionRoot) CreateSetFlavorCommandHandler() commands.SetFlavorCommandHandler {
	return commands.NewSetFlavorCommandHandler(c.stateHolder)
}

func (c *CompositionRoot) CreateChoosePickupDateCommandHandler() commands.ChoosePickupDateCommandHandler {
	return commands.NewChoosePickupDateCommandHandler(c.stateHolder)
}

func (c *CompositionRoot) CreateResetOrderCommandHandler() commands.ResetOrderCommandHandler {
	return commands.NewResetOrderCommandHandler(c.stateHolder)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.stateHolder)
}

func (c *CompositionRoot) CreateGetPickupOptionsQueryHandler() queries.GetPickupOptionsQueryHandler {
	return queries.NewGetPickupOptionsQueryHandler(c.stateHolder)
}
