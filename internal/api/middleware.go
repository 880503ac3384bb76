package api

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// logHTTPRequest provides logging middleware. It surfaces low level
// request/response data from the http server.
func logHTTPRequest(entry *logrus.Entry, h httprouter.Handle) httprouter.Handle {
	return httprouter.Handle(func(w http.ResponseWriter, req *http.Request, p httprouter.Params) {
		statusRecorder := &responseRecorder{ResponseWriter: w}

		start := time.Now()
		h(statusRecorder, req, p)
		elapsed := time.Since(start)
		if entry == nil {
			return
		}

		// The captured entry is shared by every request to the route; field
		// attachment must stay request-local.
		httpCode := statusRecorder.statusCode
		e := entry.WithFields(logrus.Fields{
			"http_method":          req.Method,
			"http_code":            httpCode,
			"elapsed_microseconds": elapsed.Microseconds(),
			"url":                  req.URL.Path,
		})
		if httpCode > 399 {
			e.Warn("httpErr")
		} else {
			e.Debug("servedHttpRequest")
		}
	})
}

// responseRecorder is a wrapper for http.ResponseWriter used to capture the
// status code written by a handler.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}
