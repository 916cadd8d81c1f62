package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/clinicdesk/clinicdesk/internal/handlers"
	"github.com/clinicdesk/clinicdesk/internal/outbox"
	"github.com/clinicdesk/clinicdesk/internal/storage"
	"github.com/clinicdesk/clinicdesk/libs/auth"
	"github.com/clinicdesk/clinicdesk/libs/config"
	"github.com/clinicdesk/clinicdesk/libs/db"
	"github.com/clinicdesk/clinicdesk/libs/httpx"
	"github.com/clinicdesk/clinicdesk/libs/kafkax"
	otelx "github.com/clinicdesk/clinicdesk/libs/otel"
	"github.com/clinicdesk/clinicdesk/libs/runtime"
)

func main() {
	service := config.String("SERVICE_NAME", "clinicdesk")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	apptRepo := storage.NewAppointmentRepository(pool)
	schedRepo := storage.NewScheduleRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	bookingHandler := handlers.NewBookingHandler(apptRepo, schedRepo, outboxRepo, logger)
	scheduleHandler := handlers.NewScheduleHandler(schedRepo, apptRepo, outboxRepo, logger)

	// Public endpoints are rate limited; Redis keeps the window shared
	// across instances, with an in-process fallback for single-node runs.
	publicLimit := config.Int("PUBLIC_RATE_LIMIT", 60)
	var limitPublic httpx.Middleware
	if redisAddr := config.String("REDIS_ADDR", ""); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()
		limitPublic = httpx.NewRedisRateLimiter(rdb, publicLimit, time.Minute, "clinicdesk:public").Middleware(logger, true)
	} else {
		limitPublic = httpx.NewRateLimiter(publicLimit, time.Minute).Middleware()
	}

	adminSecret, err := config.RequiredString("ADMIN_JWT_SECRET")
	if err != nil {
		panic(err)
	}

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.Handle("/api/v1/public/slots", limitPublic(http.HandlerFunc(bookingHandler.Slots)))
	mux.Handle("/api/v1/public/book", limitPublic(http.HandlerFunc(bookingHandler.Book)))

	admin := requireAdmin(adminSecret)
	mux.Handle("/api/v1/admin/appointments", admin(http.HandlerFunc(bookingHandler.List)))
	mux.Handle("/api/v1/admin/appointments/status", admin(http.HandlerFunc(bookingHandler.UpdateStatus)))
	mux.Handle("/api/v1/admin/specialists", admin(http.HandlerFunc(scheduleHandler.Specialists)))
	mux.Handle("/api/v1/admin/services", admin(http.HandlerFunc(scheduleHandler.Services)))
	mux.Handle("/api/v1/admin/schedule", admin(http.HandlerFunc(scheduleHandler.Weekly)))
	mux.Handle("/api/v1/admin/schedule/validate", admin(http.HandlerFunc(scheduleHandler.ValidateWeekly)))
	mux.Handle("/api/v1/admin/exceptions", admin(http.HandlerFunc(scheduleHandler.Exceptions)))
	mux.Handle("/api/v1/admin/exceptions/validate", admin(http.HandlerFunc(scheduleHandler.ValidateException)))
	mux.Handle("/api/v1/admin/closures", admin(http.HandlerFunc(scheduleHandler.Closures)))

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: splitCSV(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         10 * time.Minute,
		}),
		httpx.WithBodyLimit(1<<20),
		httpx.WithTimeout(15*time.Second),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, service)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

// requireAdmin guards the admin surface with a bearer token signed with
// the shared clinic secret. Only the admin role may pass.
func requireAdmin(secret string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			claims, err := auth.ParseAndVerifyHS256(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if claims.Role != "admin" {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
