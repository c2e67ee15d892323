package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-report-analyzer/pkg/utils"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if err := utils.WriteJSON(w, http.StatusOK, body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
