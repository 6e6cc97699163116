package api

import (
	"log/slog"
	"net/http"
)

// helloBody is the fixed greeting returned by GET /api/hello/.
const helloBody = "Hello World! from the cobia api."

// HandleHello responds with the fixed greeting. Always 200, text/plain,
// no failure mode.
func HandleHello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(helloBody)); err != nil {
		slog.Error("failed to write hello response", "error", err)
	}
}
