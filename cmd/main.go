package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkGiftCardHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/check_gift_card"
	createBlockHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_block"
	createBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_booking"
	createClosureHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_closure"
	cycleBookingStatusHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/cycle_booking_status"
	deleteBlockHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/delete_block"
	deleteBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/delete_booking"
	deleteClosureHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/delete_closure"
	deleteOverrideHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/delete_override"
	getBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_booking"
	getDayBlocksHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_day_blocks"
	getDayBookingsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_day_bookings"
	getFixedSlotsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_fixed_slots"
	getUnavailableSlotsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_unavailable_slots"
	listClosuresHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_closures"
	listOverridesHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_overrides"
	updateBookingHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/update_booking"
	upsertOverrideHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/upsert_override"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/config"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	areaRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/area"
	blockRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/block"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/schedule"
	giftupClient "github.com/m04kA/SMC-VenueService/internal/integrations/giftup"
	blocksService "github.com/m04kA/SMC-VenueService/internal/service/blocks"
	bookingsService "github.com/m04kA/SMC-VenueService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-VenueService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
	getFixedSlotsUC "github.com/m04kA/SMC-VenueService/internal/usecase/get_fixed_slots"
	getUnavailableSlotsUC "github.com/m04kA/SMC-VenueService/internal/usecase/get_unavailable_slots"
	updateBookingUC "github.com/m04kA/SMC-VenueService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента сервиса подарочных карт
	giftup := giftupClient.NewClient(
		cfg.GiftUp.URL,
		cfg.GiftUp.APIKey,
		time.Duration(cfg.GiftUp.Timeout)*time.Second,
		log,
	)
	log.Info("GiftUp client initialized (url=%s timeout=%ds)", cfg.GiftUp.URL, cfg.GiftUp.Timeout)

	// Сетка таймлайна и модель длительностей из конфигурации
	grid := domain.ScheduleGrid{
		OpenTime:    types.TimeString(cfg.Engine.OpenTime),
		CloseTime:   types.TimeString(cfg.Engine.CloseTime),
		StepMinutes: cfg.Engine.SlotStepMinutes,
	}
	timing := domain.ActivityTiming{
		FixedSlotMinutes: cfg.Engine.FixedSlotDurationMinutes,
		FlexiStepMinutes: cfg.Engine.FlexiStepMinutes,
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		blockRepository    *blockRepo.Repository
		areaRepository     *areaRepo.Repository
		catalogRepository  *catalogRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		areaRepository = areaRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		areaRepository = areaRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	blockSvc := blocksService.NewService(blockRepository, catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, catalogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		areaRepository,
		catalogRepository,
		scheduleRepository,
		txMgr,
		timing,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		areaRepository,
		catalogRepository,
		scheduleRepository,
		txMgr,
		timing,
		log,
	)
	getUnavailableSlotsUseCase := getUnavailableSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		areaRepository,
		catalogRepository,
		scheduleRepository,
		grid,
		log,
	)
	getFixedSlotsUseCase := getFixedSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		areaRepository,
		catalogRepository,
		scheduleRepository,
		timing,
		log,
	)

	// Инициализируем handlers
	getUnavailableSlots := getUnavailableSlotsHandler.NewHandler(getUnavailableSlotsUseCase, log)
	getFixedSlots := getFixedSlotsHandler.NewHandler(getFixedSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	cycleBookingStatus := cycleBookingStatusHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	createBlock := createBlockHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)
	getDayBlocks := getDayBlocksHandler.NewHandler(blockSvc, log)
	createClosure := createClosureHandler.NewHandler(scheduleSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(scheduleSvc, log)
	listClosures := listClosuresHandler.NewHandler(scheduleSvc, log)
	upsertOverride := upsertOverrideHandler.NewHandler(scheduleSvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(scheduleSvc, log)
	listOverrides := listOverridesHandler.NewHandler(scheduleSvc, log)
	checkGiftCard := checkGiftCardHandler.NewHandler(giftup, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Производные недоступные интервалы на дату
	api.HandleFunc("/availability/unavailable-slots",
		getUnavailableSlots.Handle).Methods(http.MethodGet)

	// Свободные фиксированные слоты ресурса на дату
	api.HandleFunc("/resources/{resourceId}/fixed-slots",
		getFixedSlots.Handle).Methods(http.MethodGet)

	// Проверка баланса подарочной карты
	api.HandleFunc("/gift-cards/{code}", checkGiftCard.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/status", cycleBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Блокировки ресурсов ---
	protected.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocks", getDayBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Календарные исключения ---
	protected.HandleFunc("/closures", createClosure.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/closures", listClosures.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/closures/{date}", deleteClosure.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/resources/{resourceId}/schedule-overrides/{date}",
		upsertOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/resources/{resourceId}/schedule-overrides/{date}",
		deleteOverride.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedule-overrides", listOverrides.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
