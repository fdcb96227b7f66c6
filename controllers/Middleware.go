package controllers

import (
	"net/http"

	"github.com/rabobank/bssb/conf"
	"github.com/rabobank/bssb/util"
)

func BasicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if util.BasicAuth(w, r, conf.BrokerUser, conf.BrokerPassword) {
			next.ServeHTTP(w, r)
		}
	})
}

func DebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.DumpRequest(r)
		next.ServeHTTP(w, r)
	})
}

func AddHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
