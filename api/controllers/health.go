package controllers

import (
	"net/http"

	"github.com/josongsong/oyg-storefront-tempo-sub000/api/responses"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
)

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := ""
		if cfg != nil {
			env = cfg.App.Env
		}
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"env":    env,
		})
	}
}
