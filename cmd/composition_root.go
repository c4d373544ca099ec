package cmd

import (
	"io"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/jobs"
	"coffeeshop/internal/metrics"
	"coffeeshop/internal/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
)

type CompositionRoot struct {
	cfg     Config
	shop    *coffeeshop.Shop
	logger  *slog.Logger
	metrics *metrics.ShopMetrics
}

// NewCompositionRoot wires one shop with its logger and metrics.
// Logs go to logOutput (stderr when nil); metrics are registered on registerer
// (the default registerer when nil).
func NewCompositionRoot(cfg Config, registerer prometheus.Registerer, logOutput io.Writer) (CompositionRoot, error) {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, logOutput)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:     cfg,
		shop:    coffeeshop.NewShop(),
		logger:  logger,
		metrics: metrics.NewShopMetricsWithRegisterer(registerer, cfg.MetricsNamespace),
	}, nil
}

func (c *CompositionRoot) Shop() *coffeeshop.Shop {
	return c.shop
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Metrics is exposed so inbound adapters can count input they reject before building a command.
func (c *CompositionRoot) Metrics() *metrics.ShopMetrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.shop, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateCreateCoffeeCommandHandler() commands.CreateCoffeeCommandHandler {
	return commands.NewCreateCoffeeCommandHandler(c.shop, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.shop, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetCoffeeSummaryQueryHandler() queries.GetCoffeeSummaryQueryHandler {
	return queries.NewGetCoffeeSummaryQueryHandler(c.shop)
}

func (c *CompositionRoot) CreateGetCustomerSummaryQueryHandler() queries.GetCustomerSummaryQueryHandler {
	return queries.NewGetCustomerSummaryQueryHandler(c.shop)
}

func (c *CompositionRoot) CreateGetMostAficionadoQueryHandler() queries.GetMostAficionadoQueryHandler {
	return queries.NewGetMostAficionadoQueryHandler(c.shop)
}

func (c *CompositionRoot) CreateGetTopSpenderQueryHandler() queries.GetTopSpenderQueryHandler {
	return queries.NewGetTopSpenderQueryHandler(c.shop)
}

func (c *CompositionRoot) CreateShopReportJob() (*jobs.ShopReportJob, error) {
	handler := c.CreateGetTopSpenderQueryHandler()
	return jobs.NewShopReportJob(c.cfg.ReportSchedule, handler, c.logger)
}
