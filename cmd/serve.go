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
	"github.com/spf13/cobra"

	addSpecialDayHandler "github.com/m04kA/barber-booking/internal/api/handlers/add_special_day"
	adminLoginHandler "github.com/m04kA/barber-booking/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/barber-booking/internal/api/handlers/admin_logout"
	bookingWizardHandler "github.com/m04kA/barber-booking/internal/api/handlers/booking_wizard"
	getAvailableSlotsHandler "github.com/m04kA/barber-booking/internal/api/handlers/get_available_slots"
	getDashboardHandler "github.com/m04kA/barber-booking/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/m04kA/barber-booking/internal/api/handlers/get_settings"
	getWorkingHoursHandler "github.com/m04kA/barber-booking/internal/api/handlers/get_working_hours"
	importHolidaysHandler "github.com/m04kA/barber-booking/internal/api/handlers/import_holidays"
	listAppointmentsHandler "github.com/m04kA/barber-booking/internal/api/handlers/list_appointments"
	removeSpecialDayHandler "github.com/m04kA/barber-booking/internal/api/handlers/remove_special_day"
	searchClientsHandler "github.com/m04kA/barber-booking/internal/api/handlers/search_clients"
	updateAppointmentStatusHandler "github.com/m04kA/barber-booking/internal/api/handlers/update_appointment_status"
	updateSettingsHandler "github.com/m04kA/barber-booking/internal/api/handlers/update_settings"
	validateSelectionHandler "github.com/m04kA/barber-booking/internal/api/handlers/validate_selection"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/api/session"
	appointmentRepo "github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/barber-booking/internal/infra/storage/client"
	scheduleRepo "github.com/m04kA/barber-booking/internal/infra/storage/schedule"
	specialDaysRepo "github.com/m04kA/barber-booking/internal/infra/storage/specialdays"
	holidaysClient "github.com/m04kA/barber-booking/internal/integrations/holidays"
	appointmentsService "github.com/m04kA/barber-booking/internal/service/appointments"
	clientsService "github.com/m04kA/barber-booking/internal/service/clients"
	settingsService "github.com/m04kA/barber-booking/internal/service/settings"
	createBookingUC "github.com/m04kA/barber-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
	validateSelectionUC "github.com/m04kA/barber-booking/internal/usecase/validate_selection"
	"github.com/m04kA/barber-booking/migrations"
	"github.com/m04kA/barber-booking/pkg/metrics"
	"github.com/m04kA/barber-booking/pkg/password"
	"github.com/m04kA/barber-booking/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath, migrateUp)
		},
	}
	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply pending migrations before start")

	return cmd
}

func serve(configPath string, migrateUp bool) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting barber-booking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		return err
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, wrappedDB, err := openDB(cfg, log, metricsCollector, stopMetricsCh)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateUp {
		applied, err := migrations.Up(context.Background(), wrappedDB, log)
		if err != nil {
			return err
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Инициализируем интеграционных клиентов
	holidays := holidaysClient.NewClient(
		cfg.Holidays.URL,
		time.Duration(cfg.Holidays.Timeout)*time.Second,
		log,
	)
	log.Info("Holidays client initialized (url=%s timeout=%ds)", cfg.Holidays.URL, cfg.Holidays.Timeout)

	// Инициализируем репозитории
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	specialDaysRepository := specialDaysRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(appointmentRepo.Seed())
	clientRepository := clientRepo.NewRepository(clientRepo.Seed())
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		scheduleRepository,
		specialDaysRepository,
		holidays,
		txMgr,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		settingsSvc,
		metricsCollector,
		getAvailableSlotsUC.Options{
			MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
			Location:                location,
		},
		log,
	)
	validateSelectionUseCase := validateSelectionUC.NewUseCase(settingsSvc, metricsCollector, location, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		settingsSvc,
		txMgr,
		metricsCollector,
		createBookingUC.Options{
			MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
			Location:                location,
		},
		log,
	)

	// Сессии и доступ администратора
	hashKey, blockKey, err := cfg.Session.Keys()
	if err != nil {
		return err
	}
	sessions := session.NewManager(hashKey, blockKey, session.Options{
		Secure: cfg.Session.Secure,
		MaxAge: cfg.Session.MaxAge,
	})
	if cfg.Admin.PasswordHash == "" {
		log.Warn("admin.password_hash is empty, admin login is disabled")
	}
	passwordChecker := password.NewChecker(cfg.Admin.PasswordHash)

	// Инициализируем handlers
	getWorkingHours := getWorkingHoursHandler.NewHandler(settingsSvc, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateSelection := validateSelectionHandler.NewHandler(validateSelectionUseCase, log)
	bookingWizard := bookingWizardHandler.NewHandler(settingsSvc, createBookingUseCase, sessions, location, log)
	adminLogin := adminLoginHandler.NewHandler(passwordChecker, sessions, log)
	adminLogout := adminLogoutHandler.NewHandler(sessions, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(appointmentsSvc, location, log)
	searchClients := searchClientsHandler.NewHandler(clientsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	importHolidays := importHolidaysHandler.NewHandler(settingsSvc, log)
	addSpecialDay := addSpecialDayHandler.NewHandler(settingsSvc, log)
	removeSpecialDay := removeSpecialDayHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Часы работы на неделю вперёд и ближайшие особые дни
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка выбранных даты и времени
	api.HandleFunc("/availability/validate", validateSelection.Handle).Methods(http.MethodPost)

	// Мастер записи
	api.HandleFunc("/booking/wizard", bookingWizard.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/booking/wizard", bookingWizard.HandlePost).Methods(http.MethodPost)

	// Вход и выход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют cookie сессии администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(sessions))

	// --- Заявки ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	admin.HandleFunc("/clients", searchClients.Handle).Methods(http.MethodGet)

	// --- Настройки расписания ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/settings/holidays/import", importHolidays.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/settings/special-days", addSpecialDay.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/settings/special-days/{date}", removeSpecialDay.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
