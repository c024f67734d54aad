package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	api := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
			noCache(app.timeout(next))))))
	}

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/tools", api(http.HandlerFunc(app.toolsIndex)))
	mux.Handle("POST /api/tools/{name}", api(http.HandlerFunc(app.toolExecute)))
	mux.Handle("POST /api/chat", api(http.HandlerFunc(app.chatPOST)))

	return mux
}
