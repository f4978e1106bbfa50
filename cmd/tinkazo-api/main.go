package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/internal/jackpot"
	sharedcache "github.com/radieske/tinkazo-platform/internal/shared/cache"
	"github.com/radieske/tinkazo-platform/internal/shared/config"
	"github.com/radieske/tinkazo-platform/internal/shared/kafka"
	"github.com/radieske/tinkazo-platform/internal/shared/logger"
	"github.com/radieske/tinkazo-platform/internal/shared/metrics"
	"github.com/radieske/tinkazo-platform/internal/store"
	httpapi "github.com/radieske/tinkazo-platform/internal/tinkazo-api/http"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/producer"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/ws"
)

func main() {
	cfg := config.Load()

	// Inicializa logger estruturado
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	backend, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("state backend", zap.String("backend", cfg.StateBackend), zap.Error(err))
	}
	defer backend.Close()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Writers Kafka: resultados para o worker, saldos para consumidores externos
	resultsW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicJornadaResults)
	defer resultsW.Close()
	balanceW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBalanceChanged)
	defer balanceW.Close()

	ledgerOps := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "tinkazo_api_ledger_ops_total", Help: "operações de saldo por tipo"}, []string{"op"})

	// Feed de acumulados: Redis Pub/Sub -> Hub -> clientes websocket
	hub := ws.NewHub(log, func(r *http.Request) bool { return true })
	ws.StartRedisSubscriber(ctx, log, redisClient, cfg.RedisJackpotChannel, hub)

	api := httpapi.NewServer(log, backend.Store,
		producer.NewKafkaPublisher(resultsW, balanceW),
		jackpot.NewRedisCache(redisClient, 0),
		hub,
	)
	api.OnLedger = func(op string) { ledgerOps.WithLabelValues(op).Inc() }

	wsClients := prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: "tinkazo_api_ws_clients", Help: "clientes no feed de acumulados"},
		func() float64 { return float64(hub.Clients()) })
	prometheus.MustRegister(ledgerOps, wsClients)

	msrv := metrics.StartMetricsServer(cfg.MetricsPort, map[string]metrics.HealthFunc{
		"state": backend.Health,
		"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})
	log.Info("metrics/health listening", zap.String("addr", msrv.Addr))

	apiSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("api listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("api srv", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = msrv.Shutdown(shutdownCtx)
	log.Info("tinkazo-api stopped")
}
