// Command seed upserts the builtin module catalog and exits.
package main

import (
	"context"
	"time"

	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sitekit-io/sitekit/internal/bootstrap"
	dbpkg "github.com/sitekit-io/sitekit/internal/infra/db"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

func main() {
	inj := bootstrap.BuildContainer()

	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	defer func() { _ = dbpkg.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dbpkg.Migrate(db); err != nil {
		log.Sugar().Fatalw("migrate", "err", err)
	}

	res, err := do.MustInvoke[service.ModuleService](inj).Seed(ctx, service.BuiltinModules())
	if err != nil {
		log.Sugar().Fatalw("seed builtin modules", "err", err)
	}
	log.Sugar().Infow("seed done", "created", res.Created, "updated", res.Updated)
}
