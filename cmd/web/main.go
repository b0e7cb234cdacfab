package main

import (
	"fmt"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"blogapp/pkg/common/config"
	"blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
	"blogapp/pkg/core/repository/file"
	"blogapp/pkg/core/repository/gormrepo"
	"blogapp/pkg/core/repository/memory"
	"blogapp/pkg/web/router"
)

func main() {
	cfg := config.Load()

	repos, err := buildRepositories(cfg)
	if err != nil {
		hlog.Fatalf("Failed to initialize storage: %v", err)
	}
	hlog.Infof("Storage backend: %s", cfg.Storage.Backend)

	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)

	router.RegisterAPIs(h, cfg, repos)

	h.Spin()
}

// buildRepositories constructs the backend selected by configuration. All
// backends satisfy the same contract; handlers never know which one runs.
func buildRepositories(cfg *config.Config) (repository.Repositories, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		seed := model.Seed{}
		if cfg.Storage.Seed {
			seed = model.DefaultSeed()
		}
		return memory.NewRepositories(seed), nil

	case config.BackendFile:
		return file.NewRepositories(cfg.Storage.Dir)

	case config.BackendMySQL:
		db, err := cfg.InitDB()
		if err != nil {
			return repository.Repositories{}, err
		}
		if err := gormrepo.AutoMigrate(db); err != nil {
			return repository.Repositories{}, err
		}
		return gormrepo.NewRepositories(db), nil

	default:
		return repository.Repositories{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
