// Command api serves strip-based wallpaper calculations over HTTP.
//
// POST /calculate takes a JSON body describing a room, its openings, the
// roll and the waste policy, and answers with the rolls needed plus the
// full calculation report. GET /calculate/health reports liveness.
// Settings come from ROOMSIZER_* environment variables.
package main

import (
	"log"
	"net/http"
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/Vilis322/roomsizer/internal/config"
	"github.com/Vilis322/roomsizer/internal/logging"
)

const API_PATH = "/calculate"

// maxConcurrent caps in-flight calculations.
const maxConcurrent = 100

var (
	serverHealth int32
	logger       = logr.Discard()
	debug        bool
)

func main() {
	cfg := config.Load()
	logger = logging.New(logging.Options{
		Verbosity: cfg.Verbosity,
		Dir:       cfg.LogDir,
		File:      cfg.LogFile,
	})
	debug = cfg.Debug

	http.HandleFunc("/", limiter(logged(calculate, logger), maxConcurrent))

	atomic.StoreInt32(&serverHealth, 1)
	logger.Info("listening", "addr", cfg.Addr)

	err := http.ListenAndServe(cfg.Addr, nil)
	if err != nil {
		log.Fatal(err)
	}
}
