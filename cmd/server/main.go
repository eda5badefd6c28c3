package main

//	@title			Sitekit API
//	@version		1.0
//	@description	Backend for no-code sites: owner project management and the public per-project record API.
//	@schemes		http https
//	@BasePath		/api

//  Bearer JWT issued by the identity provider, owner routes only
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Owner JWT (e.g., "Bearer eyJhbGciOi...")

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sitekit-io/sitekit/internal/bootstrap"
	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/infra/blob"
	"github.com/sitekit-io/sitekit/internal/infra/cache"
	dbpkg "github.com/sitekit-io/sitekit/internal/infra/db"
	"github.com/sitekit-io/sitekit/internal/modules/handler"
	"github.com/sitekit-io/sitekit/internal/modules/service"
	"github.com/sitekit-io/sitekit/internal/router"
	"github.com/sitekit-io/sitekit/internal/telemetry"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)
	conn := do.MustInvoke[*amqp.Connection](inj)

	// Setup OpenTelemetry tracing
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		}

		if rdb != nil {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
			}
		}
	}

	if cfg.Registry.SeedOnStart {
		res, err := do.MustInvoke[service.ModuleService](inj).Seed(context.Background(), service.BuiltinModules())
		if err != nil {
			log.Sugar().Fatalw("seed builtin modules", "err", err)
		}
		log.Sugar().Infow("builtin modules ready", "created", res.Created, "updated", res.Updated)
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Gate:             do.MustInvoke[service.TenantGate](inj),
		ProjectService:   do.MustInvoke[service.ProjectService](inj),
		ProjectHandler:   do.MustInvoke[*handler.ProjectHandler](inj),
		ModuleHandler:    do.MustInvoke[*handler.ModuleHandler](inj),
		AdminDataHandler: do.MustInvoke[*handler.AdminDataHandler](inj),
		DynamicHandler:   do.MustInvoke[*handler.DynamicHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}

	for name, c := range map[string]interface{}{
		"event publisher": do.MustInvoke[service.EventPublisher](inj),
		"blob store":      do.MustInvoke[blob.Store](inj),
	} {
		if closer, ok := c.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Sugar().Warnw("close "+name, "err", err)
			}
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Sugar().Warnw("close rabbitmq", "err", err)
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Sugar().Warnw("close redis", "err", err)
		}
	}
	if err := dbpkg.Close(db); err != nil {
		log.Sugar().Warnw("close database", "err", err)
	}
	log.Sugar().Info("server exited")
}
