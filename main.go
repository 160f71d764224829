package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sandeshcse/shopnearme/configs"
	locationController "github.com/sandeshcse/shopnearme/controllers/location"
	"github.com/sandeshcse/shopnearme/middlewares"
	"github.com/sandeshcse/shopnearme/routes"
	"github.com/sandeshcse/shopnearme/services/cart"
	"github.com/sandeshcse/shopnearme/services/catalog"
	"github.com/sandeshcse/shopnearme/services/checkout"
	"github.com/sandeshcse/shopnearme/services/notify"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	notifier := notify.NewNotifier(logger)
	catalogService := catalog.NewService(configs.LoadCatalog())
	cartStore := cart.NewStore(configs.EnvDeliveryFee(), notifier)
	checkoutFlow := checkout.NewFlow(cartStore, notifier, logger,
		configs.EnvProcessingDelay(), configs.EnvSuccessDelay())
	locationStore := locationController.NewStore()

	app := fiber.New()
	app.Use(middlewares.RequestLogger(logger))

	routes.ShopRoutes(app, catalogService)
	routes.CartRoutes(app, cartStore, catalogService)
	routes.CheckoutRoutes(app, checkoutFlow, cartStore)
	routes.LocationRoutes(app, locationStore)
	routes.NotificationRoutes(app, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(":" + configs.EnvPort())
	})
	g.Go(func() error {
		<-ctx.Done()
		// Cancel any pending checkout timer before the server goes away.
		checkoutFlow.Close()
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
