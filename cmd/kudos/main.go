package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/kudos/internal/dedup"
	"github.com/Decentr-net/kudos/internal/dispatcher"
	"github.com/Decentr-net/kudos/internal/health"
	"github.com/Decentr-net/kudos/internal/notifier"
	"github.com/Decentr-net/kudos/internal/notifier/kafka"
	"github.com/Decentr-net/kudos/internal/server"
	"github.com/Decentr-net/kudos/internal/service/impl"
	"github.com/Decentr-net/kudos/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"10s" description:"request processing timeout"`
	CORSOrigins    []string      `long:"http.cors-origins" env:"HTTP_CORS_ORIGINS" env-delim:"," description:"origins allowed to call the api, any origin when empty"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	RedisAddr     string `long:"redis.addr" env:"REDIS_ADDR" default:"localhost:6379" description:"redis address"`
	RedisPassword string `long:"redis.password" env:"REDIS_PASSWORD" description:"redis password"`
	RedisDB       int    `long:"redis.db" env:"REDIS_DB" default:"0" description:"redis database"`

	KafkaBrokers []string `long:"kafka.brokers" env:"KAFKA_BROKERS" env-delim:"," description:"kafka brokers, notifications are only logged when empty"`
	KafkaTopic   string   `long:"kafka.topic" env:"KAFKA_TOPIC" default:"notifications" description:"kafka topic for notifications"`

	JWTSecret string `long:"jwt.secret" env:"JWT_SECRET" required:"true" description:"HS256 secret of session tokens"`

	Timezone             string        `long:"reward.timezone" env:"REWARD_TIMEZONE" default:"Asia/Seoul" description:"timezone of reward days"`
	SessionStartDebounce time.Duration `long:"reward.session-start-debounce" env:"REWARD_SESSION_START_DEBOUNCE" default:"10s" description:"window where repeated session starts are suppressed"`

	DispatcherQueueSize int           `long:"dispatcher.queue-size" env:"DISPATCHER_QUEUE_SIZE" default:"1024" description:"side effects queue size"`
	DispatcherWorkers   int           `long:"dispatcher.workers" env:"DISPATCHER_WORKERS" default:"4" description:"side effects workers count"`
	DispatcherTimeout   time.Duration `long:"dispatcher.timeout" env:"DISPATCHER_TIMEOUT" default:"5s" description:"side effect processing timeout"`

	OtelEndpoint string `long:"otel.endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" description:"otlp http endpoint, tracing is disabled when empty"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

// nolint:funlen
func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Kudos"
	parser.LongDescription = "Reactions and rewards service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "kudos",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load timezone")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing := mustInitTracing(ctx)

	db := mustGetDB()
	s := postgres.New(db)

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.RedisAddr,
		Password:     opts.RedisPassword,
		DB:           opts.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	n, closeNotifier := getNotifier()

	queue := dispatcher.New(opts.DispatcherQueueSize, opts.DispatcherWorkers, opts.DispatcherTimeout)

	guard := impl.NewSuspensionGuard(s)
	ledger := impl.NewLedger(s, queue, loc)
	streaks := impl.NewStreaks(s, loc)
	sideEffects := impl.NewSideEffects(s, ledger, n)

	r := chi.NewMux()
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", db.PingContext),
		health.SubjectPinger("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		server.SetupRouter(server.Services{
			Reactions:  impl.NewReactions(s, guard, queue),
			Ledger:     ledger,
			Streaks:    streaks,
			Attendance: impl.NewAttendance(s, ledger, streaks, dedup.NewRedis(rdb), loc, opts.SessionStartDebounce),
		}, r, []byte(opts.JWTSecret), opts.CORSOrigins, loc, opts.RequestTimeout)
	})

	srv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           otelhttp.NewHandler(r, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return queue.Run(ctx, sideEffects.Handle)
	})
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown http server")
		}

		cancel()

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}

	closeNotifier()

	if err := rdb.Close(); err != nil {
		logrus.WithError(err).Error("failed to close redis client")
	}

	if err := shutdownTracing(context.Background()); err != nil {
		logrus.WithError(err).Error("failed to shutdown tracing")
	}

	if err := db.Close(); err != nil {
		logrus.WithError(err).Error("failed to close postgres connection")
	}
}

func mustInitTracing(ctx context.Context) func(context.Context) error {
	if opts.OtelEndpoint == "" {
		logrus.Info("empty otel endpoint, tracing is disabled")
		return func(context.Context) error { return nil }
	}

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(opts.OtelEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create otel exporter")
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("kudos"),
			semconv.ServiceVersion(health.GetVersion()),
		),
	)
	if err != nil {
		logrus.WithError(err).Warn("failed to merge otel resources")
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown
}

func getNotifier() (notifier.Notifier, func()) {
	if len(opts.KafkaBrokers) == 0 {
		logrus.Warn("empty kafka brokers, notifications will be logged only")
		return notifier.NewLog(), func() {}
	}

	w := kafka.NewWriter(opts.KafkaBrokers, opts.KafkaTopic)

	return kafka.New(w), func() {
		if err := w.Close(); err != nil {
			logrus.WithError(err).Error("failed to close kafka writer")
		}
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
