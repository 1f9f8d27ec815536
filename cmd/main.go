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

	admitVehicleHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/admit_vehicle"
	checkoutVehicleHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/checkout_vehicle"
	deleteVehicleHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/delete_vehicle"
	earningsReportHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/earnings_report"
	getFeeHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/get_fee"
	getVehicleHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/get_vehicle"
	listVehiclesHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/list_vehicles"
	lotStatusHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/lot_status"
	recentEntriesHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/recent_entries"
	saveStoreHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/save_store"
	todayVehiclesHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/today_vehicles"
	updateVehicleHandler "github.com/parkms/PMS-ParkingService/internal/api/handlers/update_vehicle"
	"github.com/parkms/PMS-ParkingService/internal/api/middleware"
	"github.com/parkms/PMS-ParkingService/internal/config"
	"github.com/parkms/PMS-ParkingService/internal/fees"
	vehicleRepo "github.com/parkms/PMS-ParkingService/internal/infra/storage/vehicle"
	"github.com/parkms/PMS-ParkingService/internal/ledger"
	reportsService "github.com/parkms/PMS-ParkingService/internal/service/reports"
	vehiclesService "github.com/parkms/PMS-ParkingService/internal/service/vehicles"
	"github.com/parkms/PMS-ParkingService/internal/slots"
	admitVehicleUC "github.com/parkms/PMS-ParkingService/internal/usecase/admit_vehicle"
	checkoutVehicleUC "github.com/parkms/PMS-ParkingService/internal/usecase/checkout_vehicle"
	"github.com/parkms/PMS-ParkingService/pkg/logger"
	"github.com/parkms/PMS-ParkingService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PMS-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Storage and core components
	store := vehicleRepo.NewRepository(cfg.Storage.DataFile, log)
	registry := slots.NewRegistry(cfg.Parking.TotalSlots)
	feePolicy := fees.NewPolicy(cfg.Parking.MinimumFee, cfg.Parking.HourlyRate, cfg.Parking.DailyRate)
	vehicleLedger := ledger.New(registry, feePolicy)

	// Load persisted records and rebuild slot occupancy
	records, err := store.Load()
	if err != nil {
		log.Fatal("Failed to load vehicle records from %s: %v", store.Path(), err)
	}
	vehicleLedger.Restore(records)
	log.Info("Loaded %d vehicle records from %s (occupied=%d, available=%d)",
		len(records), store.Path(), vehicleLedger.OccupiedSlots(), vehicleLedger.AvailableSlots())

	if metricsCollector != nil {
		metricsCollector.SetOccupancy(vehicleLedger.OccupiedSlots(), vehicleLedger.AvailableSlots())
	}

	// Services
	vehicleSvc := vehiclesService.NewService(vehicleLedger, store, log)
	reportSvc := reportsService.NewService(vehicleLedger, feePolicy, log)

	// Use cases; a nil recorder disables metrics collection
	var (
		admitMetrics    admitVehicleUC.MetricsRecorder
		checkoutMetrics checkoutVehicleUC.MetricsRecorder
	)
	if metricsCollector != nil {
		admitMetrics = metricsCollector
		checkoutMetrics = metricsCollector
	}

	admitVehicleUseCase := admitVehicleUC.NewUseCase(vehicleLedger, store, admitMetrics, log)
	checkoutVehicleUseCase := checkoutVehicleUC.NewUseCase(vehicleLedger, store, feePolicy, checkoutMetrics, log)

	// Handlers
	admitVehicle := admitVehicleHandler.NewHandler(admitVehicleUseCase, log)
	checkoutVehicle := checkoutVehicleHandler.NewHandler(checkoutVehicleUseCase, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	lotStatus := lotStatusHandler.NewHandler(vehicleSvc, log)
	saveStore := saveStoreHandler.NewHandler(vehicleSvc, log)
	getFee := getFeeHandler.NewHandler(reportSvc, log)
	todayVehicles := todayVehiclesHandler.NewHandler(reportSvc, log)
	recentEntries := recentEntriesHandler.NewHandler(reportSvc, log)
	earningsReport := earningsReportHandler.NewHandler(reportSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Gate operations
	api.HandleFunc("/vehicles", admitVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleNumber}", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleNumber}/checkout", checkoutVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleNumber}/fee", getFee.Handle).Methods(http.MethodGet)

	// Slots and reports
	api.HandleFunc("/slots", lotStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/today", todayVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/recent", recentEntries.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/earnings", earningsReport.Handle).Methods(http.MethodGet)

	// Manual persistence trigger
	api.HandleFunc("/store/save", saveStore.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-Role header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Record corrections (Admin only, enforced by the service)
	protected.HandleFunc("/vehicles/{vehicleNumber}", updateVehicle.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{vehicleNumber}", deleteVehicle.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Final save so no mutation is lost on shutdown
	if err := vehicleSvc.SaveAll(context.Background()); err != nil {
		log.Error("Final save failed: %v", err)
	} else {
		log.Info("Ledger persisted to %s", store.Path())
	}

	log.Info("Server stopped gracefully")
}
