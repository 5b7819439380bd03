package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets the board page be served from another origin than the API.
func Cors() Middleware {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler
}
