package handler

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
)

// NewArtifactProxy forwards download and preview requests to the conversion service.
func NewArtifactProxy(upstream string, logger *log.Logger) (http.Handler, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorLog = logger
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Printf("proxy %s: %v\n", r.URL.Path, err)
		writeError(w, http.StatusBadGateway, "conversion service unavailable")
	}
	return proxy, nil
}
