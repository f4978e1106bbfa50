package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/internal/jackpot"
	"github.com/radieske/tinkazo-platform/internal/settlement"
	"github.com/radieske/tinkazo-platform/internal/settlement-worker/consumer"
	"github.com/radieske/tinkazo-platform/internal/settlement-worker/lock"
	"github.com/radieske/tinkazo-platform/internal/settlement-worker/publisher"
	sharedcache "github.com/radieske/tinkazo-platform/internal/shared/cache"
	"github.com/radieske/tinkazo-platform/internal/shared/config"
	"github.com/radieske/tinkazo-platform/internal/shared/kafka"
	"github.com/radieske/tinkazo-platform/internal/shared/logger"
	"github.com/radieske/tinkazo-platform/internal/shared/metrics"
	"github.com/radieske/tinkazo-platform/internal/store"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Estado persistido (postgres, mongo ou memória)
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("state backend", zap.String("backend", cfg.StateBackend), zap.Error(err))
	}
	defer backend.Close()
	log.Info("state backend ready", zap.String("backend", backend.Name))

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Consumer group settlement-worker; writers de saída e DLQ
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicJornadaResults, "settlement-worker")
	defer reader.Close()
	settledW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicJornadaSettled)
	defer settledW.Close()
	balanceW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBalanceChanged)
	defer balanceW.Close()
	dlqW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicJornadaResultsDLQ)
	defer dlqW.Close()

	// Métricas Prometheus da liquidação
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_messages_consumed_total", Help: "mensagens de resultados consumidas"})
	settled := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_jornadas_settled_total", Help: "jornadas liquidadas"})
	credited := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_prizes_credited_total", Help: "valor creditado em saldos"})
	botinPaid := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_botin_paid_total", Help: "valor do Botín distribuído"})
	rolled := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_botin_rollover_total", Help: "valor transferido ao Botín"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "settlement_errors_total", Help: "erros por estágio"}, []string{"stage"})
	botin := prometheus.NewGauge(prometheus.GaugeOpts{Name: "settlement_botin_amount", Help: "Botín acumulado após a última liquidação"})
	prometheus.MustRegister(consumed, settled, credited, botinPaid, rolled, errorsBy, botin)

	proc := &consumer.Processor{
		Log:           log,
		Reader:        reader,
		Store:         backend.Store,
		Engine:        settlement.NewEngine(log),
		Lock:          lock.NewRedisLock(redisClient, lock.DefaultKey, cfg.LockTTL),
		Publisher:     publisher.NewKafkaPublisher(settledW, balanceW, dlqW),
		Cache:         jackpot.NewRedisCache(redisClient, 0),
		Broadcaster:   jackpot.NewRedisBroadcaster(redisClient, cfg.RedisJackpotChannel),
		SweepInterval: cfg.SweepInterval,
		RetryBackoff:  200 * time.Millisecond,

		OnConsumed: func() { consumed.Inc() },
		OnSettled: func(rep settlement.Report) {
			settled.Inc()
			for _, c := range rep.Credits {
				credited.Add(c.Amount)
			}
			botinPaid.Add(rep.BotinPaid)
			rolled.Add(rep.RolledOver)
			botin.Set(rep.BotinAfter)
		},
		OnError: func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Servidor HTTP para métricas e health check
	msrv := metrics.StartMetricsServer(cfg.MetricsPort, map[string]metrics.HealthFunc{
		"state": backend.Health,
		"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})
	log.Info("metrics/health listening", zap.String("addr", msrv.Addr))

	// Passada inicial: cobre jornadas fechadas enquanto o worker estava fora
	if _, err := proc.Settle(ctx, "startup"); err != nil {
		log.Warn("startup settlement failed", zap.Error(err))
	}
	if snap, err := backend.Store.Load(ctx); err == nil {
		proc.RefreshJackpot(ctx, snap)
	}

	log.Info("settlement-worker started")
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = msrv.Shutdown(shutdownCtx)
	log.Info("settlement-worker stopped")
}
