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

	cancelEventHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/cancel_event"
	checkAvailabilityHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/check_availability"
	createEventHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/create_event"
	createQuoteHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/create_quote"
	exportCalendarHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/export_calendar"
	findSlotsHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/find_slots"
	getEventHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/get_event"
	getEventQuotesHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/get_event_quotes"
	getSyncReportHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/get_sync_report"
	listEventsHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/list_events"
	syncQuotesHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/sync_quotes"
	trackQuoteViewHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/track_quote_view"
	updateEventHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/update_event"
	updateQuoteStatusHandler "github.com/kmalt/EMS-EventService/internal/api/handlers/update_quote_status"
	"github.com/kmalt/EMS-EventService/internal/api/middleware"
	"github.com/kmalt/EMS-EventService/internal/config"
	"github.com/kmalt/EMS-EventService/internal/domain"
	eventRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/event"
	quoteRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/quote"
	resourceRepo "github.com/kmalt/EMS-EventService/internal/infra/storage/resource"
	quoteExpiryJob "github.com/kmalt/EMS-EventService/internal/jobs/quote_expiry"
	calendarService "github.com/kmalt/EMS-EventService/internal/service/calendar"
	eventsService "github.com/kmalt/EMS-EventService/internal/service/events"
	quotesService "github.com/kmalt/EMS-EventService/internal/service/quotes"
	checkAvailabilityUC "github.com/kmalt/EMS-EventService/internal/usecase/check_availability"
	findSlotsUC "github.com/kmalt/EMS-EventService/internal/usecase/find_slots"
	syncStatusesUC "github.com/kmalt/EMS-EventService/internal/usecase/sync_statuses"
	updateQuoteStatusUC "github.com/kmalt/EMS-EventService/internal/usecase/update_quote_status"
	"github.com/kmalt/EMS-EventService/pkg/dbmetrics"
	"github.com/kmalt/EMS-EventService/pkg/logger"
	"github.com/kmalt/EMS-EventService/pkg/metrics"
	"github.com/kmalt/EMS-EventService/pkg/simpletxmanager"
	"github.com/kmalt/EMS-EventService/pkg/txmanager"
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

	log.Info("Starting EMS-EventService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы валидируются на старте: сервис с кривой конфигурацией
	// не должен подниматься
	businessHours, err := domain.NewBusinessHours(cfg.Booking.BusinessHoursStart, cfg.Booking.BusinessHoursEnd)
	if err != nil {
		log.Fatal("Invalid business hours configuration: %v", err)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		eventRepository    *eventRepo.Repository
		quoteRepository    *quoteRepo.Repository
		resourceRepository *resourceRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		quoteRepository = quoteRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		quoteRepository = quoteRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventSvc := eventsService.NewService(eventRepository, resourceRepository, txMgr, log)
	quoteSvc := quotesService.NewService(quoteRepository, eventRepository, txMgr, cfg.Booking.QuoteValidityDays, log)
	calendarSvc := calendarService.NewService(eventRepository, resourceRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(eventRepository, resourceRepository, log)
	findSlotsUseCase := findSlotsUC.NewUseCase(eventRepository, businessHours, cfg.Booking.SlotStrideMinutes, log)
	syncStatusesUseCase := syncStatusesUC.NewUseCase(eventRepository, quoteRepository, txMgr, log)
	updateQuoteStatusUseCase := updateQuoteStatusUC.NewUseCase(quoteRepository, syncStatusesUseCase, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	findSlots := findSlotsHandler.NewHandler(findSlotsUseCase, cfg.Booking.DefaultSlotDuration, log)
	createEvent := createEventHandler.NewHandler(eventSvc, log)
	getEvent := getEventHandler.NewHandler(eventSvc, log)
	listEvents := listEventsHandler.NewHandler(eventSvc, log)
	updateEvent := updateEventHandler.NewHandler(eventSvc, log)
	cancelEvent := cancelEventHandler.NewHandler(syncStatusesUseCase, log)
	syncQuotes := syncQuotesHandler.NewHandler(syncStatusesUseCase, log)
	getSyncReport := getSyncReportHandler.NewHandler(syncStatusesUseCase, log)
	createQuote := createQuoteHandler.NewHandler(quoteSvc, log)
	getEventQuotes := getEventQuotesHandler.NewHandler(quoteSvc, log)
	updateQuoteStatus := updateQuoteStatusHandler.NewHandler(updateQuoteStatusUseCase, log)
	trackQuoteView := trackQuoteViewHandler.NewHandler(quoteSvc, log)
	exportCalendar := exportCalendarHandler.NewHandler(calendarSvc, log)

	// Запускаем фоновую экспирацию предложений
	var expiryJob *quoteExpiryJob.Job
	if cfg.Scheduler.Enabled {
		var jobMetrics quoteExpiryJob.MetricsCollector
		if cfg.Metrics.Enabled {
			jobMetrics = metricsCollector
		}
		expiryJob = quoteExpiryJob.New(quoteSvc, jobMetrics, log)
		if err := expiryJob.Start(cfg.Scheduler.QuoteExpiryCron); err != nil {
			log.Fatal("Failed to start quote expiry job: %v", err)
		}
	}

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

	// Отметка просмотра предложения клиентом по токену из письма
	api.HandleFunc("/quotes/{quoteId}/view/{token}", trackQuoteView.Handle).Methods(http.MethodPost)

	// iCal лента событий ресурса
	api.HandleFunc("/resources/{kind}/{resourceId}/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность ---
	// Проверка доступности ресурса на интервал
	protected.HandleFunc("/events/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Поиск свободных слотов на день
	protected.HandleFunc("/events/availability", findSlots.Handle).Methods(http.MethodGet)

	// --- События ---
	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events", listEvents.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/events/{eventId}", updateEvent.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/events/{eventId}/cancel", cancelEvent.Handle).Methods(http.MethodPatch)

	// --- Синхронизация статусов ---
	protected.HandleFunc("/events/{eventId}/sync-quotes", syncQuotes.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}/sync-quotes", getSyncReport.Handle).Methods(http.MethodGet)

	// --- Предложения ---
	protected.HandleFunc("/events/{eventId}/quotes", createQuote.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}/quotes", getEventQuotes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/quotes/{quoteId}/status", updateQuoteStatus.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновые задачи
	if expiryJob != nil {
		expiryJob.Stop()
	}

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
