// Package qmsdk is the client SDK for the Quiz Master platform. It owns the
// session lifecycle (token pair, profile, role), funnels every API call
// through a pipeline that recovers expired credentials transparently, and
// feeds the route guard and the notification surface.
package qmsdk

import (
	"github.com/IRONalways17/Quiz-Master-APP/pkg/kv"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qnotify"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// SDK bundles the session, router, notifications and pipeline so callers
// don't wire keyring + session + guard themselves.
type SDK struct {
	Config  *Config
	Session *Session
	Router  *qroute.Router
	Toasts  *qnotify.Center
	Busy    *qnotify.BusyGauge

	pipeline *Pipeline
}

// New builds an SDK persisting the session in the OS keyring, initializes
// the session from storage (purging expired or undecodable tokens), and
// starts the router at the home view.
func New(cfg *Config) (*SDK, error) {
	return NewWithStore(cfg, kv.NewKeyringStore(cfg.BaseURL))
}

// NewWithStore is New with an explicit storage backend; tests pass a
// memory store.
func NewWithStore(cfg *Config, store kv.Store) (*SDK, error) {
	session := NewSession(NewSessionStore(store))
	if err := session.Initialize(); err != nil {
		return nil, err
	}

	router := qroute.NewRouter(session)
	toasts := qnotify.NewCenter()
	busy := qnotify.NewBusyGauge()

	return &SDK{
		Config:   cfg,
		Session:  session,
		Router:   router,
		Toasts:   toasts,
		Busy:     busy,
		pipeline: NewPipeline(cfg, session, router, toasts, busy),
	}, nil
}

// Pipeline exposes the request pipeline for callers with endpoints the
// typed surface doesn't cover.
func (s *SDK) Pipeline() *Pipeline {
	return s.pipeline
}
