// Package sanitytest provides an in-memory CMS API for tests.
package sanitytest

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"turtlewax/migrator/internal/config"
)

const (
	ProjectID = "test-project"
	Dataset   = "test"
	Token     = "test-token"
)

// QueryFunc answers a query that is not an asset lookup. Params keep their JSON encoding.
type QueryFunc func(query string, params map[string]string) any

type Server struct {
	*httptest.Server

	mu           sync.Mutex
	documents    map[string]map[string]any
	assets       map[string]map[string]any // by sha1
	uploads      []string
	uploadTypes  []string
	commits      int
	failIDs      map[string]bool
	mutateParams map[string]string
	queryFunc    QueryFunc
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		documents: make(map[string]map[string]any),
		assets:    make(map[string]map[string]any),
		failIDs:   make(map[string]bool),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Config returns a CMS configuration pointing at the fake server.
func (s *Server) Config() config.SanityConfig {
	return config.SanityConfig{
		ProjectID:  ProjectID,
		Dataset:    Dataset,
		APIVersion: "2025-01-01",
		APIHost:    s.URL,
		Timeout:    5,
		WriteToken: Token,
	}
}

// HandleQueries installs the answer for queries that are not asset lookups.
func (s *Server) HandleQueries(fn QueryFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryFunc = fn
}

// FailWritesTo makes every mutation touching id fail with HTTP 500.
func (s *Server) FailWritesTo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failIDs[id] = true
}

func (s *Server) Put(doc map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc["_id"].(string)] = clone(doc)
}

func (s *Server) Document(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id]
	return clone(doc), ok
}

func (s *Server) Documents() map[string]map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]map[string]any, len(s.documents))
	for id, doc := range s.documents {
		out[id] = clone(doc)
	}
	return out
}

// Uploads lists uploaded filenames in order.
func (s *Server) Uploads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.uploads...)
}

// UploadContentTypes lists the Content-Type of every upload in order.
func (s *Server) UploadContentTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.uploadTypes...)
}

// LastMutateParams returns the URL query of the last mutate call.
func (s *Server) LastMutateParams() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateParams
}

func (s *Server) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+Token {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}

	prefix := "/v2025-01-01"
	path := strings.TrimPrefix(r.URL.Path, prefix)
	switch {
	case r.Method == http.MethodPost && path == "/data/mutate/"+Dataset:
		s.mutate(w, r)
	case r.Method == http.MethodGet && path == "/data/query/"+Dataset:
		s.query(w, r)
	case r.Method == http.MethodPost && path == "/assets/images/"+Dataset:
		s.upload(w, r, "image")
	case r.Method == http.MethodPost && path == "/assets/files/"+Dataset:
		s.upload(w, r, "file")
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found: " + r.URL.Path})
	}
}

func (s *Server) mutate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mutations []map[string]json.RawMessage `json:"mutations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mutateParams = make(map[string]string)
	for key := range r.URL.Query() {
		s.mutateParams[key] = r.URL.Query().Get(key)
	}

	// Work on a copy so a failing transaction leaves nothing behind.
	staged := make(map[string]map[string]any, len(s.documents))
	for id, doc := range s.documents {
		staged[id] = doc
	}

	results := make([]map[string]string, 0, len(body.Mutations))
	for _, mutation := range body.Mutations {
		for op, raw := range mutation {
			var payload map[string]any
			if err := json.Unmarshal(raw, &payload); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
				return
			}

			id, _ := payload["_id"].(string)
			if op == "patch" {
				id, _ = payload["id"].(string)
			}
			if s.failIDs[id] {
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "write failed for " + id})
				return
			}

			switch op {
			case "createOrReplace":
				staged[id] = payload
			case "createIfNotExists":
				if _, exists := staged[id]; !exists {
					staged[id] = payload
				}
			case "patch":
				doc, exists := staged[id]
				if !exists {
					writeJSON(w, http.StatusConflict, map[string]any{"error": fmt.Sprintf("document %q not found", id)})
					return
				}
				staged[id] = applyPatch(doc, payload)
			default:
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unsupported mutation " + op})
				return
			}
			results = append(results, map[string]string{"id": id, "operation": op})
		}
	}

	s.documents = staged
	s.commits++
	writeJSON(w, http.StatusOK, map[string]any{
		"transactionId": r.URL.Query().Get("transactionId"),
		"results":       results,
	})
}

func applyPatch(doc, patch map[string]any) map[string]any {
	out := clone(doc)
	if setIfMissing, ok := patch["setIfMissing"].(map[string]any); ok {
		for k, v := range setIfMissing {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
	if set, ok := patch["set"].(map[string]any); ok {
		for k, v := range set {
			out[k] = v
		}
	}
	if unset, ok := patch["unset"].([]any); ok {
		for _, k := range unset {
			delete(out, k.(string))
		}
	}
	return out
}

func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	params := make(map[string]string)
	for key := range values {
		if strings.HasPrefix(key, "$") {
			params[strings.TrimPrefix(key, "$")] = values.Get(key)
		}
	}

	s.mu.Lock()
	var result any
	if raw, ok := params["hash"]; ok {
		var hash string
		_ = json.Unmarshal([]byte(raw), &hash)
		var assetType string
		_ = json.Unmarshal([]byte(params["type"]), &assetType)
		if asset, exists := s.assets[hash]; exists && (assetType == "" || asset["_type"] == assetType) {
			result = asset["_id"]
		}
	}
	handler := s.queryFunc
	s.mu.Unlock()

	if result == nil && handler != nil {
		result = handler(values.Get("query"), params)
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": values.Get("query"), "result": result})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request, kind string) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	sum := sha1.Sum(data)
	hash := hex.EncodeToString(sum[:])
	asset := map[string]any{
		"_id":              fmt.Sprintf("%s-%s", kind, hash),
		"_type":            "sanity." + kind + "Asset",
		"sha1hash":         hash,
		"mimeType":         r.Header.Get("Content-Type"),
		"originalFilename": r.URL.Query().Get("filename"),
	}

	s.mu.Lock()
	s.uploads = append(s.uploads, r.URL.Query().Get("filename"))
	s.uploadTypes = append(s.uploadTypes, r.Header.Get("Content-Type"))
	s.assets[hash] = asset
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"document": asset})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// clone deep-copies a JSON document.
func clone(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	data, _ := json.Marshal(doc)
	var out map[string]any
	_ = json.Unmarshal(data, &out)
	return out
}
