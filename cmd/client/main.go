package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/codaya2005/PolyLab-EECE455/internal/api"
	"github.com/codaya2005/PolyLab-EECE455/internal/cache"
	"github.com/codaya2005/PolyLab-EECE455/internal/classroom"
	"github.com/codaya2005/PolyLab-EECE455/internal/config"
	"github.com/codaya2005/PolyLab-EECE455/internal/ctxdata"
	"github.com/codaya2005/PolyLab-EECE455/internal/drafts"
	"github.com/codaya2005/PolyLab-EECE455/internal/logging"
	"github.com/codaya2005/PolyLab-EECE455/internal/mfa"
	"github.com/codaya2005/PolyLab-EECE455/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)
	ctx = logging.ContextWithLogger(ctx, logger)

	traceID, err := uuid.NewV7()
	if err != nil {
		traceID = uuid.New()
	}
	ctx = ctxdata.WithTraceID(ctx, traceID.String())

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	apiClient, err := api.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	if err != nil {
		logger.Fatal(ctx, "cannot create api client", zap.Error(err))
	}

	var listCache cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" {
		redisConn := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisConn.Close()
		listCache = cache.NewRedisCache(redisConn)
	}

	sessionStore := session.NewStore(apiClient)
	user, err := sessionStore.Refresh(ctx)
	if err != nil {
		logger.Fatal(ctx, "not authenticated", zap.Error(err))
	}
	ctx = ctxdata.WithUserID(ctx, strconv.FormatInt(user.Id, 10))
	logger.Info(ctx, "signed in",
		zap.String("email", user.Email),
		zap.String("role", user.Role.String()),
		zap.Bool("mfa_enabled", user.TotpEnabled),
	)

	mfaController := mfa.NewController(apiClient, sessionStore)
	logger.Info(ctx, "mfa state", zap.String("state", string(mfaController.Snapshot().State)))

	draftStore := drafts.NewStore(apiClient)
	loader := classroom.NewLoader(apiClient, draftStore, listCache)

	if cfg.ClassroomID == 0 {
		logger.Info(ctx, "no classroom configured, done")
		return
	}

	view, err := loader.Load(ctx, cfg.ClassroomID)
	if err != nil {
		logger.Fatal(ctx, "classroom load failed", zap.Error(err))
	}

	numbers := drafts.Numbering(view.Assignments)
	for _, a := range view.Assignments {
		logger.Info(ctx, "assignment",
			zap.Int("number", numbers[a.Id]),
			zap.String("title", a.Title),
			zap.Int("submissions", len(view.History[a.Id])),
		)
	}
	logger.Info(ctx, "classroom loaded",
		zap.String("name", view.Classroom.Name),
		zap.Int("assignments", len(view.Assignments)),
		zap.Int("materials", len(view.Materials)),
		zap.Int("submitted", draftStore.SubmittedCount()),
	)
}
