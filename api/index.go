package handler

import (
	"net/http"
	"sync"

	"luxeroom/config"
	"luxeroom/di"
	"luxeroom/shared/logger"
	httpTransport "luxeroom/transport/http"
)

var (
	initOnce sync.Once
	server   *httpTransport.HTTP
)

// Handler is the serverless entrypoint. The server is built once per
// runtime instance; in-memory state then lives as long as the instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
