package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xpmourad/cutout/internal/infra"
	"github.com/xpmourad/cutout/internal/removal"
)

// App is the handler container holding everything the HTTP surface needs.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Removals *removal.Service
	History  *History
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger infra.Logger, removals *removal.Service) *App {
	return &App{
		Config:   cfg,
		Logger:   logger,
		Removals: removals,
		History:  NewHistory(cfg.HistoryLimit),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
