package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/config"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/models"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/store"
)

const scenarioXML = `<scenario><size value="2"/><goals><goal id="G1"><condition type="TimeElapsed" value="5"/></goal></goals></scenario>`

type fakeLibrary struct {
	mu   sync.Mutex
	revs map[string][]models.Revision
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{revs: map[string][]models.Revision{}}
}

func (f *fakeLibrary) Save(_ context.Context, name string, raw []byte) (models.Revision, error) {
	doc, xml, err := codec.Normalize(string(raw))
	if err != nil {
		return models.Revision{}, errors.Join(store.ErrInvalidDocument, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	revs := f.revs[name]
	if n := len(revs); n > 0 && revs[n-1].XML == xml {
		return models.Revision{}, store.ErrDuplicateRevision
	}
	rev := models.Revision{Name: name, Kind: doc.Kind(), XML: xml, Revision: len(revs) + 1}
	f.revs[name] = append(revs, rev)
	return rev, nil
}

func (f *fakeLibrary) Get(_ context.Context, name string) (models.Revision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	revs := f.revs[name]
	if len(revs) == 0 {
		return models.Revision{}, store.ErrNotFound
	}
	return revs[len(revs)-1], nil
}

func (f *fakeLibrary) List(context.Context, int) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Document
	for name, revs := range f.revs {
		out = append(out, models.Document{Name: name, Kind: revs[0].Kind, CurrentRevision: len(revs)})
	}
	return out, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestConfig(keys ...string) *config.Config {
	cfg := &config.Config{Cache: config.CacheConfig{MaxEntries: 8}, Preview: config.PreviewConfig{Enabled: true}}
	for _, k := range keys {
		cfg.APIKeys = append(cfg.APIKeys, config.APIKey{Name: "test", Key: k})
	}
	return cfg
}

func TestRouter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        *config.Config
		deps       Deps
		method     string
		target     string
		body       string
		header     map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health without db",
			cfg:        newTestConfig(),
			method:     http.MethodGet,
			target:     "/health",
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name:       "health with failing db",
			cfg:        newTestConfig(),
			deps:       Deps{DB: fakePinger{err: errors.New("down")}},
			method:     http.MethodGet,
			target:     "/health",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "version",
			cfg:        newTestConfig(),
			method:     http.MethodGet,
			target:     "/version",
			wantStatus: http.StatusOK,
			wantBody:   `"kinds":["environment","scenario"]`,
		},
		{
			name:       "validate reports position",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/xml/validate",
			body:       "<scenario>\n<size></scenario>",
			wantStatus: http.StatusOK,
			wantBody:   `"line":2`,
		},
		{
			name:       "validate ok",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/xml/validate",
			body:       scenarioXML,
			wantStatus: http.StatusOK,
			wantBody:   `{"valid":true}`,
		},
		{
			name:       "format",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/xml/format",
			body:       `<scenario><size value="2"/></scenario>`,
			wantStatus: http.StatusOK,
			wantBody:   "<scenario>\n  <size value=\"2\"></size>\n</scenario>",
		},
		{
			name:       "parse",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/parse",
			body:       scenarioXML,
			wantStatus: http.StatusOK,
			wantBody:   `"kind":"scenario"`,
		},
		{
			name:       "parse unknown root",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/parse",
			body:       `<campaign/>`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "render",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/render?kind=environment",
			body:       `{"resource_factor": {"value": 1.5}}`,
			wantStatus: http.StatusOK,
			wantBody:   codec.Declaration + `<environment><resource_factor value="1.5"/></environment>`,
		},
		{
			name:       "render unknown kind",
			cfg:        newTestConfig(),
			method:     http.MethodPost,
			target:     "/api/render?kind=campaign",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "season preset",
			cfg:        newTestConfig(),
			method:     http.MethodGet,
			target:     "/api/presets/seasons/Winter",
			wantStatus: http.StatusOK,
			wantBody:   `"snow_setup_id":"WinterSnow"`,
		},
		{
			name:       "unknown season preset",
			cfg:        newTestConfig(),
			method:     http.MethodGet,
			target:     "/api/presets/seasons/Monsoon",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "api key required",
			cfg:        newTestConfig("secret"),
			method:     http.MethodGet,
			target:     "/api/presets/seasons",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong api key",
			cfg:        newTestConfig("secret"),
			method:     http.MethodGet,
			target:     "/api/presets/seasons",
			header:     map[string]string{"X-API-Key": "guess"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid api key",
			cfg:        newTestConfig("secret"),
			method:     http.MethodGet,
			target:     "/api/presets/seasons",
			header:     map[string]string{"X-API-Key": "secret"},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"Spring"`,
		},
		{
			name:       "documents without library",
			cfg:        newTestConfig(),
			method:     http.MethodGet,
			target:     "/api/documents/anything",
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			NewRouter(tc.cfg, tc.deps).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d: %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("body %q does not contain %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestDocumentsFlow(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestConfig(), Deps{Library: newFakeLibrary()})
	do := func(method, target, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
		return rec
	}

	if rec := do(http.MethodGet, "/api/documents/valley", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get before save: %d", rec.Code)
	}
	if rec := do(http.MethodPost, "/api/documents/valley", scenarioXML); rec.Code != http.StatusCreated {
		t.Fatalf("save: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(http.MethodPost, "/api/documents/valley", scenarioXML); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate save: %d", rec.Code)
	}
	if rec := do(http.MethodPost, "/api/documents/valley", "<scenario>"); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid save: %d", rec.Code)
	}

	rec := do(http.MethodGet, "/api/documents/valley?format=xml", "")
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), codec.Declaration+"<scenario>") {
		t.Fatalf("get xml: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodGet, "/api/documents", "")
	var list DocumentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Name != "valley" {
		t.Fatalf("unexpected list %#v", list)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewRouter(newTestConfig(), Deps{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(scenarioXML)))
	if rec.Code != http.StatusOK {
		t.Fatalf("parse: %d %s", rec.Code, rec.Body.String())
	}

	var parsed struct {
		Kind     string          `json:"kind"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render?kind="+parsed.Kind, strings.NewReader(string(parsed.Document))))
	if rec.Code != http.StatusOK {
		t.Fatalf("render: %d %s", rec.Code, rec.Body.String())
	}
	if want := codec.Declaration + scenarioXML; rec.Body.String() != want {
		t.Fatalf("got  %s\nwant %s", rec.Body.String(), want)
	}
}

func TestPreviewWebSocket(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewRouter(newTestConfig(), Deps{}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/preview"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	tests := []struct {
		name    string
		req     any
		wantXML string
		wantErr bool
	}{
		{
			name:    "xml",
			req:     PreviewRequest{XML: scenarioXML},
			wantXML: codec.Declaration + scenarioXML,
		},
		{
			name:    "document",
			req:     map[string]any{"kind": "environment", "document": map[string]any{"sun_angle_factor": map[string]any{"value": 2}}},
			wantXML: codec.Declaration + `<environment><sun_angle_factor value="2"/></environment>`,
		},
		{
			name:    "malformed xml",
			req:     PreviewRequest{XML: "<scenario>"},
			wantErr: true,
		},
		{
			name:    "empty request",
			req:     PreviewRequest{},
			wantErr: true,
		},
	}

	// one connection, requests answered in order
	for _, tc := range tests {
		if err := conn.WriteJSON(tc.req); err != nil {
			t.Fatalf("%s: write: %v", tc.name, err)
		}
		var res struct {
			Kind  string          `json:"kind"`
			XML   string          `json:"xml"`
			Error json.RawMessage `json:"error"`
		}
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatalf("%s: read: %v", tc.name, err)
		}
		if tc.wantErr {
			if len(res.Error) == 0 {
				t.Fatalf("%s: expected an error", tc.name)
			}
			continue
		}
		if res.XML != tc.wantXML {
			t.Fatalf("%s: got  %s\nwant %s", tc.name, res.XML, tc.wantXML)
		}
	}
}
