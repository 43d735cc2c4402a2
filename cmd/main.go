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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	cancelBookingHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/get_customer_bookings"
	getProviderBookingsHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/get_provider_bookings"
	getServiceOptionsHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/get_service_options"
	paymentWebhookHandler "github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers/payment_webhook"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/config"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/infra/cache/bookedtimes"
	bookingRepo "github.com/m04kA/SMC-MarketplaceBooking/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/SMC-MarketplaceBooking/internal/infra/storage/listing"
	listingServiceClient "github.com/m04kA/SMC-MarketplaceBooking/internal/integrations/listingservice"
	bookingsService "github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-MarketplaceBooking/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-MarketplaceBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-MarketplaceBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/metrics"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/txmanager"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// catalogSource источник объявлений (HTTP сервис или MongoDB)
type catalogSource interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
}

// bookedTimesStore чтение занятых времен и сброс кэша
type bookedTimesStore interface {
	GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error)
	Invalidate(ctx context.Context, providerID string, date time.Time) error
}

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

	log.Info("Starting SMC-MarketplaceBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	recorder := metrics.NewRecorder(metricsCollector)

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

	// Без метрик обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Источник каталога
	var catalog catalogSource
	switch cfg.Catalog.Source {
	case config.CatalogSourceMongo:
		connectCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.Timeout)*time.Second)
		mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err == nil {
			err = mongoClient.Ping(connectCtx, nil)
		}
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error("Failed to disconnect from MongoDB: %v", err)
			}
		}()

		collection := mongoClient.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		catalog = listingRepo.NewRepository(collection, time.Duration(cfg.Mongo.Timeout)*time.Second)
		log.Info("Catalog source: MongoDB (db=%s, collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)

	default:
		catalog = listingServiceClient.NewClient(
			cfg.ListingService.URL,
			time.Duration(cfg.ListingService.Timeout)*time.Second,
			log,
		)
		log.Info("Catalog source: ListingService (url=%s, timeout=%ds)",
			cfg.ListingService.URL, cfg.ListingService.Timeout)
	}

	// Кэш занятых времен
	var bookedTimes bookedTimesStore = bookedtimes.NewPassthrough(bookingRepository)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: при ошибках Redis чтение идет в Postgres
			log.Warn("Redis ping failed, cache will degrade to storage: %v", err)
		}
		cancel()

		bookedTimes = bookedtimes.NewCache(
			redisClient,
			bookingRepository,
			time.Duration(cfg.Redis.BookedTimesTTL)*time.Second,
			recorder,
			log,
		)
		log.Info("Booked times cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.BookedTimesTTL)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		bookedTimes,
		recorder,
		log,
	)
	catalogSvc := catalogService.NewService(catalog, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		bookedTimes,
		recorder,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalog,
		bookedTimes,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServiceOptions := getServiceOptionsHandler.NewHandler(catalogSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(bookingSvc, cfg.Payments.WebhookSecret, log)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты для бронирования
	api.HandleFunc("/providers/{providerId}/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Позиции каталога с длительностью
	api.HandleFunc("/services/{serviceId}/options",
		getServiceOptions.Handle).Methods(http.MethodGet)

	// Вебхук платежей (аутентификация по подписи Stripe)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (с ограничением частоты на клиента)
	protected.Handle("/bookings", rateLimiter.Limit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования (клиент или провайдер)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение бронирования (провайдер)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/me/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Провайдер ---
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)

	// CORS для UI
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserEmail, middleware.HeaderProviderID},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
}
