package bootstrap

import (
	"context"
	"fmt"

	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/infra/blob"
	"github.com/sitekit-io/sitekit/internal/infra/cache"
	"github.com/sitekit-io/sitekit/internal/infra/db"
	"github.com/sitekit-io/sitekit/internal/infra/logger"
	mq "github.com/sitekit-io/sitekit/internal/infra/queue"
	"github.com/sitekit-io/sitekit/internal/modules/handler"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"github.com/sitekit-io/sitekit/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildContainer wires the API. Redis, RabbitMQ and blob storage are
// optional: when disabled their providers yield nil and the services fall
// back to no-op behaviour.
func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return d, nil
	})

	// Redis [optional]
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Redis.Enabled {
			return nil, nil
		}
		return cache.New(cfg)
	})
	do.Provide(inj, func(i *do.Injector) (service.RevisionCounter, error) {
		rdb := do.MustInvoke[*redis.Client](i)
		if rdb == nil {
			return nil, nil
		}
		return cache.NewSiteRevisions(rdb), nil
	})

	// RabbitMQ [optional]
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		return mq.New(cfg)
	})
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		conn := do.MustInvoke[*amqp.Connection](i)
		if conn == nil {
			return nil, nil
		}
		cfg := do.MustInvoke[*config.Config](i)
		p, err := mq.NewPublisher(conn, cfg.RabbitMQ.Exchange, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}
		return p, nil
	})

	// Blob [optional]
	do.Provide(inj, func(i *do.Injector) (blob.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		switch cfg.Blob.Driver {
		case "s3":
			if cfg.S3.Bucket == "" {
				log.Sugar().Warnw("s3 bucket not set, image uploads disabled")
				return nil, nil
			}
			s, err := blob.NewS3(context.Background(), cfg)
			if err != nil {
				return nil, err
			}
			return s, nil
		case "gcs":
			if cfg.GCS.Bucket == "" {
				log.Sugar().Warnw("gcs bucket not set, image uploads disabled")
				return nil, nil
			}
			g, err := blob.NewGCS(context.Background(), cfg)
			if err != nil {
				return nil, err
			}
			return g, nil
		case "", "none":
			return nil, nil
		default:
			return nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
		}
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ModuleRepo, error) {
		return repo.NewModuleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectModuleRepo, error) {
		return repo.NewProjectModuleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RecordRepo, error) {
		return repo.NewRecordRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.TenantGate, error) {
		return service.NewTenantGate(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ModuleRepo](i),
			do.MustInvoke[repo.ProjectModuleRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ModuleService, error) {
		return service.NewModuleService(
			do.MustInvoke[repo.ModuleRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ModuleRepo](i),
			do.MustInvoke[repo.ProjectModuleRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DynamicService, error) {
		return service.NewDynamicService(
			do.MustInvoke[service.TenantGate](i),
			do.MustInvoke[repo.RecordRepo](i),
			do.MustInvoke[repo.ProjectModuleRepo](i),
			do.MustInvoke[repo.ModuleRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[service.RevisionCounter](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AdminDataService, error) {
		return service.NewAdminDataService(
			do.MustInvoke[repo.RecordRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[service.RevisionCounter](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UploadService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewUploadService(do.MustInvoke[blob.Store](i), cfg.Blob.MaxUploadBytes), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExportService, error) {
		return service.NewExportService(
			do.MustInvoke[service.TenantGate](i),
			do.MustInvoke[repo.RecordRepo](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ModuleHandler, error) {
		return handler.NewModuleHandler(do.MustInvoke[service.ModuleService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AdminDataHandler, error) {
		return handler.NewAdminDataHandler(
			do.MustInvoke[service.AdminDataService](i),
			do.MustInvoke[service.UploadService](i),
			do.MustInvoke[service.ExportService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DynamicHandler, error) {
		return handler.NewDynamicHandler(do.MustInvoke[service.DynamicService](i)), nil
	})

	return inj
}
