package main

import (
	"net/http"

	"github.com/go-logr/logr"
)

// limiter lets at most max requests run the wrapped handler at once.
func limiter(f http.HandlerFunc, max int) http.HandlerFunc {
	// semaphore
	sem := make(chan struct{}, max)

	return func(w http.ResponseWriter, r *http.Request) {
		// blocks if semaphore is full
		sem <- struct{}{}
		// dequeue semaphore
		defer func() { <-sem }()

		// execute
		f(w, r)
	}
}

// logged notes every request before handing it on.
func logged(f http.HandlerFunc, log logr.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "from", r.RemoteAddr)
		f(w, r)
	}
}
