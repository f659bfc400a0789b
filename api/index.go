package handler

import (
	"net/http"
	"os"
	"spa/config"
	"spa/di"
	"spa/shared/logger"
	"sync"

	transport "spa/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get(), os.Stdout)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
