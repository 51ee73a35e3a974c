package hammer

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/corneldamian/httpway"
	"github.com/gorilla/handlers"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

/*************************
 * API Server
 *************************/

func (h *Hammer) statsHandler(response http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	fmt.Fprint(response, h.reporter.String())
}

func (h *Hammer) stopHandler(response http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	h.Stop()
	fmt.Fprint(response, "{\"status\": \"ok\"}")
}

func (h *Hammer) router() http.Handler {
	r := httprouter.New()

	r.GET("/stats", h.statsHandler)
	r.PUT("/stop", h.stopHandler)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	return handlers.LoggingHandler(log.Writer(), r)
}

// runApiServer serves until the stop signal is set.
func (h *Hammer) runApiServer() {
	h.apiServer = httpway.NewServer(nil)
	h.apiServer.Handler = h.router()
	h.apiServer.Addr = fmt.Sprintf("%s:%d", h.apiAddress, h.apiPort)

	if err := h.apiServer.Start(); err != nil {
		h.addError(err)
		return
	}

	<-h.stopSignal.Done()

	if err := h.apiServer.Stop(); err != nil {
		h.addError(err)
	}

	if err := h.apiServer.WaitStop(2 * time.Second); err != nil {
		h.addError(err)
	}
}
