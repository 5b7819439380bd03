package app

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/vancomm/classic-mines/internal/handlers"
	"github.com/vancomm/classic-mines/internal/metrics"
)

//go:embed static
var static embed.FS

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.store, a.ws)

	page, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	a.router.Handle("GET /", http.FileServerFS(page))

	a.router.HandleFunc("GET /v1/status", handlers.Status(a.log, a.store))
	a.router.Handle("GET /metrics", metrics.Handler())

	a.router.HandleFunc("POST /v1/game", game.NewGame)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE /v1/game/{id}", game.Delete)
	a.router.HandleFunc("POST /v1/game/{id}/open", game.Open)
	a.router.HandleFunc("POST /v1/game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST /v1/game/{id}/reset", game.Reset)
	a.router.HandleFunc("POST /v1/game/{id}/batch", game.Batch)
	a.router.HandleFunc("GET /v1/game/{id}/connect", game.ConnectWS)
}
