package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	authservice "github.com/goserg/volunteerhub/auth/service"
	authsqlite "github.com/goserg/volunteerhub/auth/storage/sqlite"
	"github.com/goserg/volunteerhub/internal/config"
	"github.com/goserg/volunteerhub/internal/events"
	"github.com/goserg/volunteerhub/internal/logger"
	"github.com/goserg/volunteerhub/internal/service"
	"github.com/goserg/volunteerhub/internal/storage/sqlite"
)

// app is the wired set of components shared by the commands.
type app struct {
	cfg     config.Config
	log     *logrus.Logger
	storage *sqlite.Storage
	events  events.Publisher
	service *service.Service
	auth    *authservice.Service
}

func newApp(opts *RootOptions) (*app, error) {
	cfg, err := config.New(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.Debug {
		cfg.Server.Debug = true
	}
	return wire(cfg, logger.New(cfg.Server.Debug))
}

func wire(cfg config.Config, l *logrus.Logger) (*app, error) {
	st, err := sqlite.New(l, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	auth, err := authservice.New(cfg.Auth, authsqlite.New(l, st.DB()))
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	publisher, err := events.New(l, cfg.Events)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("events: %w", err)
	}
	return &app{
		cfg:     cfg,
		log:     l,
		storage: st,
		events:  publisher,
		service: service.New(l, st, publisher, cfg.Matching),
		auth:    auth,
	}, nil
}

func (a *app) Close() {
	a.events.Close()
	if err := a.storage.Close(); err != nil {
		a.log.WithError(err).Error("close storage")
	}
}
