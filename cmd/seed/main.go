package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"practicecoach/internal/app"
	"practicecoach/internal/config"
	"practicecoach/internal/logger"
	"practicecoach/internal/model"
	"practicecoach/internal/repository"
)

// seed validates the question corpus, mirrors it into Mongo and creates a demo institution
func main() {
	validateOnly := flag.Bool("validate", false, "validate the corpus and exit without touching Mongo")
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	defer log.Sync()

	questions, emails, err := app.LoadCorpus(cfg.Corpus)
	if err != nil {
		log.Fatal("question corpus is invalid", zap.Error(err))
	}
	log.Info("question corpus valid",
		zap.Int("questions", len(questions)),
		zap.Int("emailQuestions", len(emails)),
		zap.String("extraFile", cfg.Corpus.ExtraFile),
	)
	if *validateOnly {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := app.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("mongo unavailable", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Mongo.Database)
	repository.EnsureIndexes(ctx, db, log)

	questionRepo := repository.NewQuestionRepo(db)
	n, err := questionRepo.UpsertQuestions(ctx, questions)
	if err != nil {
		log.Fatal("failed to upsert questions", zap.Error(err))
	}
	m, err := questionRepo.UpsertEmailQuestions(ctx, emails)
	if err != nil {
		log.Fatal("failed to upsert email questions", zap.Error(err))
	}
	log.Info("questions mirrored", zap.Int64("questions", n), zap.Int64("emailQuestions", m))

	counts, err := questionRepo.CountByType(ctx)
	if err != nil {
		log.Warn("failed to count questions", zap.Error(err))
	}
	for qType, count := range counts {
		log.Info("question count", zap.String("type", qType), zap.Int("count", count))
	}

	institutions := repository.NewInstitutionRepo(db)
	existing, err := institutions.GetByName(ctx, demoInstitution.Name)
	if err != nil {
		log.Fatal("failed to look up demo institution", zap.Error(err))
	}
	if existing != nil {
		log.Info("demo institution already present", zap.String("id", existing.ID))
		return
	}

	inst := demoInstitution
	if err := institutions.Create(ctx, &inst); err != nil {
		log.Fatal("failed to create demo institution", zap.Error(err))
	}
	log.Info("demo institution created", zap.String("id", inst.ID), zap.String("name", inst.Name))
}

var demoInstitution = model.Institution{
	Name:         "Demo Career Academy",
	Kind:         model.InstitutionSchool,
	ContactEmail: "placements@demo-academy.example",
	Seats:        50,
}
