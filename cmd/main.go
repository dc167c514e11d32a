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

	createAppointmentHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/list_appointments"
	listContactMessagesHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/list_contact_messages"
	submitContactHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/submit_contact"
	updateStatusHandler "github.com/avergne/CFD-RdvService/internal/api/handlers/update_status"
	"github.com/avergne/CFD-RdvService/internal/api/middleware"
	"github.com/avergne/CFD-RdvService/internal/config"
	"github.com/avergne/CFD-RdvService/internal/domain"
	apptRepo "github.com/avergne/CFD-RdvService/internal/infra/storage/appointment"
	contactRepo "github.com/avergne/CFD-RdvService/internal/infra/storage/contactmsg"
	appointmentsService "github.com/avergne/CFD-RdvService/internal/service/appointments"
	contactService "github.com/avergne/CFD-RdvService/internal/service/contact"
	createAppointmentUC "github.com/avergne/CFD-RdvService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/avergne/CFD-RdvService/internal/usecase/get_available_slots"
	"github.com/avergne/CFD-RdvService/pkg/dbmetrics"
	"github.com/avergne/CFD-RdvService/pkg/logger"
	"github.com/avergne/CFD-RdvService/pkg/metrics"
	"github.com/avergne/CFD-RdvService/pkg/txmanager"
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

	log.Info("Starting CFD-RdvService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона кабинета: окно бронирования считается в ней
	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	log.Info("Business timezone: %s", cfg.Business.Timezone)

	// Сетки слотов по типам рендез-вус
	formationGrid, err := domain.NewSlotGrid(
		domain.TypeFormation,
		cfg.Slots.Formation.Start,
		cfg.Slots.Formation.End,
		cfg.Slots.Formation.DurationMinutes,
	)
	if err != nil {
		log.Fatal("Failed to build formation slot grid: %v", err)
	}
	livrablesGrid, err := domain.NewSlotGrid(
		domain.TypeLivrables,
		cfg.Slots.Livrables.Start,
		cfg.Slots.Livrables.End,
		cfg.Slots.Livrables.DurationMinutes,
	)
	if err != nil {
		log.Fatal("Failed to build livrables slot grid: %v", err)
	}
	grids := map[domain.AppointmentType]domain.SlotGrid{
		domain.TypeFormation: formationGrid,
		domain.TypeLivrables: livrablesGrid,
	}
	log.Info("Slot grids loaded: formation=%d slots, livrables=%d slots",
		len(formationGrid.Times), len(livrablesGrid.Times))

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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository *apptRepo.Repository
		contactRepository     *contactRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		txMgr = txmanager.NewFromSQLDB(db)
	}

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	contactSvc := contactService.NewService(contactRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		grids,
		txMgr,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		grids,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	submitContact := submitContactHandler.NewHandler(contactSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

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

	// Доступные слоты на дату и тип рендез-вус
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование рендез-вус (форма посетителя)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Контактная форма
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Дашборд рендез-вус ---
	// Список рендез-вус с фильтрами по типу и статусу
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение рендез-вус по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса рендез-вус
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Сообщения контактной формы ---
	protected.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)

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
