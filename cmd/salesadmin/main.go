package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rookgm/salesadmin/config"
	"github.com/rookgm/salesadmin/internal/alert"
	"github.com/rookgm/salesadmin/internal/gateway"
	"github.com/rookgm/salesadmin/internal/handler"
	api "github.com/rookgm/salesadmin/internal/handler/http"
	"github.com/rookgm/salesadmin/internal/logger"
	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/realtime"
	"github.com/rookgm/salesadmin/internal/service"
	"github.com/rookgm/salesadmin/internal/store"
	"github.com/rookgm/salesadmin/internal/worker"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// backend gateway
	client := gateway.NewClient(cfg.APIBaseURL, gateway.WithMetrics(gateway.NewMetrics(registry)))
	customersAPI := gateway.NewEndpoint[models.Customer](client, gateway.ResourceCustomers)
	sellersAPI := gateway.NewEndpoint[models.Seller](client, gateway.ResourceSellers)
	platformsAPI := gateway.NewEndpoint[models.Platform](client, gateway.ResourcePlatforms)
	statusesAPI := gateway.NewEndpoint[models.Status](client, gateway.ResourceStatuses)
	ordersAPI := gateway.NewEndpoint[models.Order](client, gateway.ResourceOrders)

	// dependency injection
	st := store.New()
	alerts := alert.NewNotifier(cfg.AlertTTL)

	customerForm := service.NewCustomerForm(customersAPI, st.Customers, alerts)
	sellerForm := service.NewSellerForm(sellersAPI, st.Sellers, alerts)
	platformForm := service.NewPlatformForm(platformsAPI, st.Platforms, alerts)
	orderService := service.NewOrderService(st, ordersAPI, alerts)

	loader := service.NewLoader()
	service.Bind(loader, st.Customers, customersAPI)
	service.Bind(loader, st.Sellers, sellersAPI)
	service.Bind(loader, st.Platforms, platformsAPI)
	service.Bind(loader, st.Statuses, statusesAPI)
	service.Bind(loader, st.Orders, ordersAPI)

	// realtime
	hub := realtime.NewHub()
	st.Subscribe(func(name string) {
		hub.Broadcast(realtime.EventStoreChanged, name)
	})
	alerts.Subscribe(func(a models.Alert, active bool) {
		if !active {
			hub.Broadcast(realtime.EventAlert, nil)
			return
		}
		hub.Broadcast(realtime.EventAlert, a)
	})

	// initial load, then periodic refresh when configured
	go worker.NewRefresher(loader, cfg.RefreshInterval).Run(ctx)

	router := handler.New(handler.Handlers{
		Orders:    api.NewOrderHandler(orderService),
		OrderForm: api.NewFormHandler[models.Order](orderService),
		Customers: api.NewFormHandler[models.Customer](customerForm),
		Sellers:   api.NewFormHandler[models.Seller](sellerForm),
		Platforms: api.NewFormHandler[models.Platform](platformForm),
		Statuses:  st.Statuses,
		Alerts:    api.NewAlertHandler(alerts),
		Loader:    loader,
		WS:        api.NewWSHandler(hub),
		Gatherer:  registry,
		AccessLog: logger.Log,
	})

	logger.Log.Info("Running server",
		zap.String("addr", cfg.ServerAddr),
		zap.String("backend", cfg.APIBaseURL))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
