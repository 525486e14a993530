package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tweet-insights-srv/config"
	"tweet-insights-srv/config/kafka"
	"tweet-insights-srv/config/minio"
	"tweet-insights-srv/config/postgre"
	"tweet-insights-srv/internal/ingestion"
	ingestionProducer "tweet-insights-srv/internal/ingestion/delivery/kafka/producer"
	ingestionPostgre "tweet-insights-srv/internal/ingestion/repository/postgre"
	ingestionUsecase "tweet-insights-srv/internal/ingestion/usecase"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/scheduler"
	"tweet-insights-srv/pkg/twitter"

	"github.com/prometheus/client_golang/prometheus"
)

const jobName = "cdc-tweet-ingestion"

func main() {
	once := flag.Bool("once", false, "run the ingestion job once and exit")
	date := flag.String("date", "", "ingestion date (YYYY-MM-DD) for -once; defaults to today in UTC")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.MustRegister(prometheus.DefaultRegisterer)

	uc, cleanup, err := setup(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize ingestion job: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(discord.Config{WebhookURL: cfg.Discord.WebhookURL})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		}
	}

	newJob := func(runDate string) scheduler.Job {
		return func(jobCtx context.Context) error {
			out, err := uc.Run(jobCtx, ingestion.RunInput{Date: runDate})
			if err != nil {
				if discordClient != nil {
					_ = discordClient.SendError(jobCtx, "Ingestion run failed", out.Run.ID, err)
				}
				return err
			}
			logger.Infof(jobCtx, "Ingestion run %s: fetched=%d relevant=%d kept=%d chunks=%d object=%s",
				out.Run.ID, out.Run.Fetched, out.Run.Relevant, out.Run.Kept, out.Run.Chunks, out.Run.ObjectKey)
			return nil
		}
	}

	if *once {
		if err := newJob(*date)(ctx); err != nil {
			logger.Errorf(ctx, "Ingestion run failed: %v", err)
			cleanup()
			os.Exit(1)
		}
		return
	}

	go func() {
		if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
			logger.Warnf(ctx, "Metrics listener stopped: %v", err)
		}
	}()

	sched, err := scheduler.New(logger, cfg.Ingestion.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Failed to create scheduler: %v", err)
		return
	}
	if err := sched.AddJob(jobName, cfg.Ingestion.Schedule, newJob("")); err != nil {
		logger.Errorf(ctx, "Failed to schedule ingestion: %v", err)
		return
	}
	sched.Start()
	logger.Infof(ctx, "Ingestion scheduled (%s %s), next run at %s",
		cfg.Ingestion.Schedule, cfg.Ingestion.Timezone, sched.NextRun(jobName))

	<-ctx.Done()
	logger.Info(context.Background(), "Shutdown signal received, waiting for running jobs...")
	<-sched.Stop().Done()
	logger.Info(context.Background(), "Ingestion scheduler stopped gracefully")
}

// setup connects the job's dependencies. cleanup releases them and is safe to call twice.
func setup(ctx context.Context, logger log.Logger, cfg *config.Config) (ingestion.UseCase, func(), error) {
	var closers []func()
	done := false
	cleanup := func() {
		if done {
			return
		}
		done = true
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, func() { _ = postgre.Disconnect(db) })
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Info(ctx, "MinIO client initialized")

	// Kafka producer
	kafkaProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, func() { _ = kafkaProducer.Close() })
	logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)

	// X API
	twitterClient, err := twitter.New(twitter.Config{BearerToken: cfg.Twitter.BearerToken})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	// Chunker
	tokenizer, err := ingestionUsecase.NewTiktokenTokenizer(ingestionUsecase.DefaultEncoding)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	chunker := ingestionUsecase.NewChunker(tokenizer, cfg.Ingestion.ChunkSize, cfg.Ingestion.ChunkOverlap)

	uc := ingestionUsecase.New(
		logger,
		ingestionPostgre.New(db, logger),
		twitterClient,
		minioClient,
		ingestionProducer.New(logger, kafkaProducer),
		chunker,
		ingestionUsecase.Config{
			Query:     cfg.Twitter.Query,
			MaxTweets: cfg.Ingestion.MaxTweets,
			TopN:      cfg.Ingestion.TopN,
			Bucket:    cfg.MinIO.Bucket,
		},
	)
	return uc, cleanup, nil
}
