package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/Vilis322/roomsizer"
	"github.com/Vilis322/roomsizer/internal/svg"
)

func calculate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
	w.Header().Set("X-Content-Type-Options", "sniff")
	w.Header().Set("Content-Type", "application/json")

	urlpath := strings.TrimRight(r.URL.Path, "/")
	if r.Method == http.MethodGet && urlpath == API_PATH+"/health" {
		defer r.Body.Close()
		fmt.Fprintf(w, "%v", atomic.LoadInt32(&serverHealth) == 1)
		return
	}

	rid := getid(r)
	var err = errid{reqid: rid}

	switch r.Method {
	case http.MethodPost, http.MethodOptions:
	default:
		werr(w, err.text("calculate: unexpected method used"), 405, "method not allowed")
		return
	}

	// only 2 endpoints
	if urlpath != API_PATH {
		werr(w, err.text("calculate: resource not found"), 404, "not found")
		return
	}

	// preflight carries no body
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// get input data
	var req RequestData
	{
		dec := json.NewDecoder(r.Body)
		fail := dec.Decode(&req)
		var (
			msg  string
			code int
		)
		if fail != nil {
			switch fail.(type) {
			case *json.SyntaxError:
				msg = "json syntax malformation"
				code = 400 // bad request
			default:
				msg = "invalid data"
				code = 422 // unprocessable entity
			}
			if werr(w, err.wrap(fail, "fail decoding json input"), code, msg) {
				return
			}
		}
		defer r.Body.Close()
	}

	// assemble the room
	room, fail := roomsizer.NewRoom(req.Room.Width, req.Room.Length, req.Room.Height)
	if fail != nil {
		werr(w, err.from(fail), 422, fail.Error())
		return
	}
	for _, od := range req.Openings {
		kind, fail := roomsizer.ParseKind(od.Kind)
		if fail != nil {
			werr(w, err.from(fail), 422, fail.Error())
			return
		}
		o, fail := roomsizer.NewOpening(od.Width, od.Height, kind)
		if fail != nil {
			werr(w, err.from(fail), 422, fail.Error())
			return
		}
		fail = room.AddOpening(o)
		if fail != nil {
			werr(w, err.from(fail), 422, fail.Error())
			return
		}
	}

	// waste policy; a left-out extra factor means no extra
	extra := 1.0
	if req.ExtraFactor != nil {
		extra = *req.ExtraFactor
	}
	policy, fail := roomsizer.NewWastePolicy(req.DropAllowance, extra)
	if fail != nil {
		werr(w, err.from(fail), 422, fail.Error())
		return
	}

	roll, fail := roomsizer.NewRollSpec(req.RollWidth, req.RollLength)
	if fail != nil {
		werr(w, err.from(fail), 422, fail.Error())
		return
	}

	rep, fail := roomsizer.NewStripCalculator(roll, policy).WithLogger(logger).Plan(room)
	if fail != nil {
		werr(w, err.from(fail), 422, fail.Error())
		return
	}

	var plan string
	if req.Plan {
		plan, fail = svg.PlanWeb(rep, true, req.ShowDim)
		if fail != nil {
			werr(w, err.from(fail), 500, "error preparing svg plan")
			return
		}
	}

	out := ResponseData{
		Success:     true,
		RollsNeeded: rep.Rolls,
		WallArea:    round2(rep.WallArea),
		NetWallArea: round2(rep.NetWallArea),
		Perimeter:   round2(rep.Perimeter),
		Report:      rep,
		Plan:        plan,
	}
	b, fail := json.Marshal(out)
	if fail != nil {
		werr(w, err.from(fail), 500, "json error")
		return
	}

	logger.V(1).Info("calculation served", "id", rid, "rolls", rep.Rolls)

	io.Copy(w, bytes.NewReader(b))
}

// round2 keeps the two decimals the summary fields advertise.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func werr(w http.ResponseWriter, err error, code int, msg string) bool {
	// no error leave
	if err == nil {
		return false
	}

	if debug {
		// for debugging
		if x, ok := err.(errid); ok {
			log.Printf("%v\t%+v\n", x.id(), x.err)
		}
	} else {
		// for logging
		err = errors.Cause(err)
		log.Printf("%+v", err)
	}

	// for client
	w.WriteHeader(code)
	fail := json.NewEncoder(w).Encode(errorData{Error: msg})
	if fail != nil {
		log.Printf("%+v", fail)
	}

	return true
}
