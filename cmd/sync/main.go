package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"poolmirror/internal/adapter/repo"
	"poolmirror/internal/domain/storejson"
	"poolmirror/internal/fetch"
	"poolmirror/internal/infra"
	"poolmirror/internal/reconcile"
)

func main() {
	// Muat .env (opsional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("run_id", uuid.NewString()).Logger()

	if err := cfg.RequirePoolID(); err != nil {
		logger.Fatal().Err(err).Msg("sync: invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("sync: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)
	if err := repo.EnsureSchema(ctx, runner); err != nil {
		logger.Fatal().Err(err).Msg("sync: schema setup failed")
	}

	fetcher, err := fetch.NewClient(fetch.Options{
		BaseURL:    cfg.PoolBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("sync: failed to configure fetcher")
	}

	raw, err := fetcher.StoreJSON(ctx, cfg.PoolID)
	if err != nil {
		logger.Fatal().Err(err).Msg("sync: pool page fetch failed")
	}

	snap, err := storejson.Decode(raw, cfg.PoolID)
	if err != nil {
		logger.Fatal().Err(err).Msg("sync: snapshot decode failed")
	}
	logger.Info().
		Str("pool_id", snap.PoolID).
		Str("title", snap.Title).
		Int("transactions", len(snap.Transactions)).
		Msg("snapshot fetched")

	contributors := repo.NewContributorRepository(runner, logger)
	payments := repo.NewPaymentRepository(runner, logger)

	ownerSum, err := payments.RecordedSum(ctx, snap.OwnerID)
	if err != nil {
		logger.Fatal().Err(err).Msg("sync: owner sum query failed")
	}
	if snap.OwnerPledge < ownerSum {
		// Remote deletions are out of scope; an over-recorded store is
		// surfaced but left alone.
		logger.Warn().
			Float64("pledge", snap.OwnerPledge).
			Float64("recorded", ownerSum).
			Msg("store has more owner payments recorded than pledged")
	}

	newContributors, newPayments := reconcile.New().Reconcile(snap, ownerSum)

	// Contributors go first so payment rows point at existing ids. The two
	// batches fail independently.
	failed := false
	if n, err := contributors.UpsertAll(ctx, newContributors); err != nil {
		logger.Error().Err(err).Msg("sync: contributor upsert failed")
		failed = true
	} else if n > 0 {
		logger.Info().Int("inserted", n).Msg("added new contributors")
	} else {
		logger.Info().Msg("no new contributors")
	}

	if n, err := payments.UpsertAll(ctx, newPayments); err != nil {
		logger.Error().Err(err).Msg("sync: payment upsert failed")
		failed = true
	} else if n > 0 {
		logger.Info().Int("inserted", n).Msg("added new payments")
	} else {
		logger.Info().Msg("no new payments")
	}

	if failed {
		os.Exit(1)
	}
	logger.Info().Msg("import done")
}
