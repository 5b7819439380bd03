package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/classic-mines/internal/config"
	"github.com/vancomm/classic-mines/internal/middleware"
	"github.com/vancomm/classic-mines/internal/mines"
	"github.com/vancomm/classic-mines/internal/session"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	log    *logrus.Logger
	config *config.Config
	router *http.ServeMux
	store  *session.Store
	ws     *config.WebSocket
}

func New(log *logrus.Logger, c *config.Config, opts ...mines.Option) *App {
	app := &App{
		log:    log,
		config: c,
		router: http.NewServeMux(),
		store:  session.NewStore(c.Session.TTL.Duration, opts...),
		ws:     config.NewWebSocket(),
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Start serves until ctx is done or the listener fails, sweeping idle
// sessions in the background.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", a.config.Addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return a.store.Run(gCtx, a.config.Session.SweepInterval.Duration)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Info("shutting down")
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
