package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/create_appointment"
	healthHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_appointments"
	listDictionariesHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_dictionaries"
	updateStatusHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	dictionaryRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/dictionary"
	appointmentsService "github.com/m04kA/SMC-ClinicService/internal/service/appointments"
	dictionariesService "github.com/m04kA/SMC-ClinicService/internal/service/dictionaries"
	createAppointmentUC "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ClinicService/pkg/dbpool"
	"github.com/m04kA/SMC-ClinicService/pkg/logger"
	"github.com/m04kA/SMC-ClinicService/pkg/metrics"
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

	log.Info("Starting SMC-ClinicService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Пул подключений к БД с ленивой инициализацией:
	// соединение устанавливается при первом запросе, а не при старте сервиса.
	// Сервис поднимается даже при недоступной БД и отвечает 500 до ее появления
	pool := dbpool.New(dbpool.Options{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	}, metricsCollector)
	log.Info("Database pool configured (host=%s, port=%d, db=%s), connection deferred until first request",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Фоновый сбор статистики пула стартует после первой инициализации.
	// Горутина только наблюдает за состоянием и не провоцирует подключение:
	// первое обращение к БД остается за первым HTTP-запросом
	if cfg.Metrics.Enabled {
		go func() {
			for {
				select {
				case <-stopMetricsCh:
					return
				case <-time.After(5 * time.Second):
				}
				if !pool.Initialized() {
					continue
				}
				if db, err := pool.Get(context.Background()); err == nil {
					db.StartPoolStatsCollector(10*time.Second, stopMetricsCh)
					return
				}
			}
		}()
	}

	// Инициализируем репозитории
	dictionaryRepository := dictionaryRepo.NewRepository(pool)
	appointmentRepository := appointmentRepo.NewRepository(pool)

	// Инициализируем сервисы
	dictionariesSvc := dictionariesService.NewService(dictionaryRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(pool, log)
	listDictionaries := listDictionariesHandler.NewHandler(dictionariesSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Проверка доступности сервиса и БД
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/doctors", listDictionaries.Doctors).Methods(http.MethodGet)
	api.HandleFunc("/services", listDictionaries.Services).Methods(http.MethodGet)
	api.HandleFunc("/cabinets", listDictionaries.Cabinets).Methods(http.MethodGet)
	api.HandleFunc("/patients", listDictionaries.Patients).Methods(http.MethodGet)

	// --- Записи на прием ---
	// Журнал записей (последние 200)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Создание записи через хранимую процедуру
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Смена статуса записи
	api.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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

	if err := pool.Shutdown(); err != nil {
		log.Error("Failed to close database pool: %v", err)
	}

	log.Info("Server stopped gracefully")
}
