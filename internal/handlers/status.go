package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/classic-mines/internal/session"
)

type StatusDTO struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func Status(log *logrus.Logger, store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendJSONOrLog(w, log, StatusDTO{Status: "ok", Sessions: store.Len()})
	}
}
