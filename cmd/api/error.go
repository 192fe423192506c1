package main

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/pkg/errors"
)

// errid tags an error with the id of the request it happened in.
type errid struct {
	reqid string
	err   error
}

func (e errid) wrap(cause error, txt string) error {
	err := errors.WithMessage(cause, txt)
	if debug {
		err = errors.Wrap(cause, txt)
	}
	e.err = err
	return e
}

func (e errid) id() string {
	return e.reqid
}

func (e errid) Error() string {
	return fmt.Sprintf("%s: %s", e.reqid, e.err.Error())
}

func (e errid) text(txt string) error {
	err := errors.WithStack(errors.New(txt))
	e.err = err
	return e
}

func (e errid) from(err error) error {
	err = errors.WithStack(err)
	e.err = err
	return e
}

// getid takes the request id the client sent or mints a short one.
func getid(r *http.Request) string {
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		return rid
	}
	chars := []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]byte, 8)
	for i := range b {
		b[i] = chars[rand.Intn(len(chars))]
	}
	return string(b)
}
