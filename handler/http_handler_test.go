package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"urlintake/logging"
)

func init() {
	logging.GetLogger().SetOutput(io.Discard)
}

type countingObserver struct {
	received []int
	rejected int
}

func (o *countingObserver) PayloadReceived(urlCount int) { o.received = append(o.received, urlCount) }
func (o *countingObserver) PayloadRejected()             { o.rejected++ }

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/process_url", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestProcessURLAcceptsMappings(t *testing.T) {
	bodies := map[string]string{
		"empty mapping":   `{"urls": {}}`,
		"mixed values":    `{"urls": {"a": "https://example.com", "b": 1, "c": null, "d": [1, {"x": true}]}}`,
		"extra fields":    `{"urls": {"tab": "https://go.dev"}, "source": "extension"}`,
		"big number":      `{"urls": {"n": 123456789012345678901234567890}}`,
		"surrounding ws":  "\n  {\"urls\": {}}  \n",
		"duplicate urls":  `{"urls": "x", "urls": {}}`,
		"nested mappings": `{"urls": {"k": {"k": {"k": {}}}}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			obs := &countingObserver{}
			w := post(NewProcessURLHandler(1<<20, obs), body)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != `{"status":"received"}` {
				t.Errorf("body = %s", got)
			}
			if len(obs.received) != 1 || obs.rejected != 0 {
				t.Errorf("observer = %+v", obs)
			}
		})
	}
}

func TestProcessURLCountsEntries(t *testing.T) {
	obs := &countingObserver{}
	post(NewProcessURLHandler(1<<20, obs), `{"urls": {"a": 1, "b": 2, "c": 3}}`)
	if !reflect.DeepEqual(obs.received, []int{3}) {
		t.Errorf("received = %v, want [3]", obs.received)
	}
}

func TestProcessURLRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ValidationError
	}{
		{"empty body", ``, missing("body")},
		{"missing urls", `{}`, missing("body", "urls")},
		{"misspelled urls", `{"url": {}}`, missing("body", "urls")},
		{"urls string", `{"urls": "https://example.com"}`, notAMapping("body", "urls")},
		{"urls number", `{"urls": 42}`, notAMapping("body", "urls")},
		{"urls array", `{"urls": ["https://example.com"]}`, notAMapping("body", "urls")},
		{"urls bool", `{"urls": true}`, notAMapping("body", "urls")},
		{"urls null", `{"urls": null}`, notAMapping("body", "urls")},
		{"body array", `[{"urls": {}}]`, notAMapping("body")},
		{"body string", `"urls"`, notAMapping("body")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &countingObserver{}
			w := post(NewProcessURLHandler(1<<20, obs), tt.body)

			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body)
			}
			var resp ValidationResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if len(resp.Detail) != 1 || !reflect.DeepEqual(resp.Detail[0], tt.want) {
				t.Errorf("detail = %+v, want %+v", resp.Detail, tt.want)
			}
			if obs.rejected != 1 || len(obs.received) != 0 {
				t.Errorf("observer = %+v", obs)
			}
		})
	}
}

func TestProcessURLRejectsInvalidJSON(t *testing.T) {
	for _, body := range []string{`{"urls": {`, `urls=1`, `{"urls": {}} trailing`} {
		obs := &countingObserver{}
		w := post(NewProcessURLHandler(1<<20, obs), body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", body, w.Code)
		}
		if obs.rejected != 1 {
			t.Errorf("%q: rejected = %d, want 1", body, obs.rejected)
		}
	}
}

func TestProcessURLBodyLimit(t *testing.T) {
	body := `{"urls": {"a": "` + strings.Repeat("x", 100) + `"}}`

	w := post(NewProcessURLHandler(64, nil), body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}

	w = post(NewProcessURLHandler(int64(len(body)), nil), body)
	if w.Code != http.StatusOK {
		t.Errorf("status at exact limit = %d, want 200", w.Code)
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body = %s", got)
	}
}
