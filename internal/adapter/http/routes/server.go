package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"suprimentos/internal/adapter/http/handlers"
	"suprimentos/internal/adapter/persistence/repository"
	"suprimentos/internal/config"
	"suprimentos/internal/domain/sourcing"
	"suprimentos/internal/infrastructure/cache"
	"suprimentos/internal/infrastructure/database"
	"suprimentos/internal/infrastructure/export"
	"suprimentos/internal/infrastructure/payments"
	"suprimentos/internal/infrastructure/scheduler"
	"suprimentos/internal/usecase"
	"suprimentos/internal/usecase/interfaces"
)

// Run wires the service, serves HTTP and blocks until SIGINT or SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	h, sched, closeFn, err := getRoutes(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      NewRouter(cfg, h, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if sched != nil {
		sched.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-quit:
	}

	logger.Info("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("[server] exited")
	return nil
}

func getRoutes(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, *scheduler.Scheduler, func(), error) {
	closers := []func(){}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Handlers, *scheduler.Scheduler, func(), error) {
		closeAll()
		return Handlers{}, nil, func() {}, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return fail(err)
	}

	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.Tables.Budgets)
	reservationRepo := repository.NewReservationDynamoRepository(ddb, cfg.Tables.Reservations, cfg.Tables.Budgets)
	ruleRepo := repository.NewBudgetRuleDynamoRepository(ddb, cfg.Tables.BudgetRules)
	paymentRepo := repository.NewOrderPaymentDynamoRepository(ddb, cfg.Tables.OrderPayments)

	var balanceCache interfaces.IBalanceCache
	if cfg.Redis.Enabled {
		rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		balanceCache = cache.NewRedisBalanceCache(rdb, cfg.Redis.BalanceTTL)
		logger.Info("[cache][redis] balance cache enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	var orderRepo interfaces.IOrderRepository
	var historyRepo interfaces.IRequisitionHistoryRepository
	if cfg.Database.Enabled {
		db, err := database.ConnectPostgres(cfg.Database, logger)
		if err != nil {
			return fail(err)
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { _ = sqlDB.Close() })
		}
		orderRepo = repository.NewOrderGormRepository(db)
		historyRepo = repository.NewRequisitionHistoryGormRepository(db)
	} else {
		logger.Warn("[database][postgres] disabled; order export and order payments are unavailable")
	}

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, balanceCache, logger)
	reservationUseCase := usecase.NewReservationUseCase(reservationRepo, budgetRepo, historyRepo, balanceCache, logger)
	ruleUseCase := usecase.NewBudgetRuleUseCase(ruleRepo, logger)
	sourcingUseCase := usecase.NewSourcingUseCase(sourcing.Weights{
		Technical: decimal.NewFromFloat(cfg.Sourcing.TechnicalWeight),
		Price:     decimal.NewFromFloat(cfg.Sourcing.PriceWeight),
	}, cfg.Sourcing.MinBids, logger)

	h := Handlers{
		Budget:      handlers.NewBudgetHandler(budgetUseCase),
		Reservation: handlers.NewReservationHandler(reservationUseCase),
		BudgetRule:  handlers.NewBudgetRuleHandler(ruleUseCase),
		Sourcing:    handlers.NewSourcingHandler(sourcingUseCase),
	}

	if orderRepo != nil {
		var paymentGateway interfaces.IPaymentGateway
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, logger)
		if err != nil {
			logger.Warn("[payment] Mercado Pago gateway not configured", zap.Error(err))
		} else {
			paymentGateway = mpGateway
		}

		paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, reservationUseCase, paymentGateway, usecase.PaymentOptions{
			Mock:            cfg.MercadoPago.Mock,
			AccessToken:     cfg.MercadoPago.AccessToken,
			TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
			TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
		}, logger)
		exportUseCase := usecase.NewOrderExportUseCase(orderRepo, export.Renderers(), logger)

		h.OrderExport = handlers.NewOrderExportHandler(exportUseCase)
		h.OrderPayment = handlers.NewOrderPaymentHandler(paymentUseCase)
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		alertUseCase := usecase.NewBudgetAlertUseCase(budgetRepo, logger)
		sched, err = scheduler.New(cfg.Scheduler.BudgetAlertsSpec, alertUseCase, logger)
		if err != nil {
			return fail(err)
		}
	}

	return h, sched, closeAll, nil
}
