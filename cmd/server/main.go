package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/task-tracker/internal/config"
	"github.com/iliyamo/task-tracker/internal/database"
	"github.com/iliyamo/task-tracker/internal/handler"
	"github.com/iliyamo/task-tracker/internal/middleware"
	"github.com/iliyamo/task-tracker/internal/queue"
	"github.com/iliyamo/task-tracker/internal/repository"
	"github.com/iliyamo/task-tracker/internal/router"
	queue_publisher "github.com/iliyamo/task-tracker/internal/service"
	"github.com/iliyamo/task-tracker/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, task-list caching disabled")
	}

	codec := utils.NewTokenCodec(cfg.JWTSecret, time.Duration(cfg.TokenTTLDays)*24*time.Hour)
	guard := middleware.BearerAuth(codec)
	cache := middleware.TaskListCache(config.LoadCacheConfig(), rdb)

	// Publish activity events off the request path; failures are logged by
	// the publisher and otherwise ignored.
	events := handler.EventSink(func(_ context.Context, ev queue.ActivityEvent) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishActivity(ctx, ev)
		}()
	})

	users := repository.NewUserRepo(db)
	tasks := repository.NewTaskRepo(db)
	authHandler := handler.NewAuthHandler(users, codec, cfg.BcryptCost, events)
	taskHandler := handler.NewTaskHandler(tasks, events)

	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.Recover())
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, guard)
	router.RegisterTasks(e, taskHandler, guard, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
