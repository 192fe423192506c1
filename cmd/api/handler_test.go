package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func Test_calculate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(calculate))
	defer ts.Close()

	ts.URL += API_PATH

	type test struct {
		data   string
		status int
	}

	t.Run("invalid input", func(t *testing.T) {

		tt := []test{
			{`{}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7}}`, 422},
			{`{"room":{"width":-5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":2}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"extraFactor":0}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"extraFactor":0.5}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"dropAllowance":-0.1}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"openings":[{"width":1.2,"height":3.5}]}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"openings":[{"width":1.2,"height":1.5,"kind":"arch"}]}`, 422},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":"0.53","rollLength":10.05}`, 422},
		}
		var buf *bytes.Buffer

		for _, tc := range tt {
			buf = bytes.NewBuffer([]byte(tc.data))

			resp := post(t, ts.URL+"/", buf)
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Errorf("data %s got status %d, expected %d", tc.data, resp.StatusCode, tc.status)
			}
		}
	})

	t.Run("invalid input names the fault", func(t *testing.T) {

		buf := bytes.NewBufferString(`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":2}`)
		resp := post(t, ts.URL+"/", buf)
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		body := string(b)

		if !strings.Contains(body, `"success":false`) {
			t.Errorf("body %s missing success:false", body)
		}
		if !strings.Contains(body, "roll too short") {
			t.Errorf("body %s does not name the roll fault", body)
		}
	})

	t.Run("malformed json", func(t *testing.T) {

		tt := []test{
			{`{"rollWidth":aaa,"rollLength":10}`, 400},
			{`{"rollWidth":,"rollLength":10}`, 400},
		}
		var buf *bytes.Buffer

		for _, tc := range tt {
			buf = bytes.NewBuffer([]byte(tc.data))

			resp := post(t, ts.URL+"/", buf)
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Errorf("data %s got status %d, expected %d", tc.data, resp.StatusCode, tc.status)
			}
		}
	})

	t.Run("method and path guards", func(t *testing.T) {

		resp, err := http.Get(ts.URL)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != 405 {
			t.Errorf("GET got status %d, expected 405", resp.StatusCode)
		}

		resp = post(t, ts.URL+"/extra", bytes.NewBufferString(`{}`))
		resp.Body.Close()
		if resp.StatusCode != 404 {
			t.Errorf("unknown path got status %d, expected 404", resp.StatusCode)
		}
	})

	t.Run("health", func(t *testing.T) {

		get := func() string {
			resp, err := http.Get(ts.URL + "/health")
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			return string(b)
		}

		if got := get(); got != "false" {
			t.Errorf("health before serving got %q, expected false", got)
		}
		atomic.StoreInt32(&serverHealth, 1)
		if got := get(); got != "true" {
			t.Errorf("health after serving got %q, expected true", got)
		}
	})

	t.Run("valid input", func(t *testing.T) {

		tt := []struct {
			data   string
			status int
			want   string
		}{
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05}`,
				200, `"rollsNeeded":12`},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"openings":[{"width":1.2,"height":1.5,"kind":"window"},{"width":0.9,"height":2,"kind":"door"}]}`,
				200, `"rollsNeeded":11`},
			{`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"extraFactor":1.1}`,
				200, `"rollsNeeded":13`},
		}
		var buf *bytes.Buffer

		for _, tc := range tt {
			buf = bytes.NewBuffer([]byte(tc.data))

			resp := post(t, ts.URL+"/", buf)
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Errorf("data %s got status %d, expected %d", tc.data, resp.StatusCode, tc.status)
			}

			b, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			body := string(b)

			if !strings.Contains(body, `"success":true`) {
				t.Errorf("data %s body %s missing success:true", tc.data, body)
			}
			if !strings.Contains(body, tc.want) {
				t.Errorf("data %s body %s missing %s", tc.data, body, tc.want)
			}
			if !strings.Contains(body, `"report":{`) {
				t.Errorf("data %s body %s missing report", tc.data, body)
			}
			if strings.Contains(body, `"plan":`) {
				t.Errorf("data %s body %s carries a plan nobody asked for", tc.data, body)
			}
		}
	})

	t.Run("plan requested", func(t *testing.T) {

		buf := bytes.NewBufferString(`{"room":{"width":5,"length":4,"height":2.7},"rollWidth":0.53,"rollLength":10.05,"plan":true,"showDim":true}`)
		resp := post(t, ts.URL+"/", buf)
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			t.Fatalf("got status %d, expected 200", resp.StatusCode)
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		body := string(b)

		if !strings.Contains(body, `"plan":"`) {
			t.Errorf("body %s missing the requested plan", body)
		}
		if !strings.Contains(body, `</svg>`) {
			t.Errorf("body %s plan is not svg", body)
		}
	})
}

func post(t *testing.T, url string, buf *bytes.Buffer) *http.Response {
	resp, err := http.Post(url, "application/json", buf)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}
