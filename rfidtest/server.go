// Package rfidtest provides an in-process stand-in for the RFID status API,
// for tests of code that talks to it.
package rfidtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gorilla/mux"
)

// DefaultPrefix mirrors the path of the reference deployment.
const DefaultPrefix = "/rfid_api"

// Record is one row of the data set served by get_data.php.
type Record struct {
	ID     int    `json:"id"`
	RFID   string `json:"rfid"`
	Status int    `json:"status,omitempty"`
}

// Request is what the server saw for one incoming call.
type Request struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        []byte
	Form        url.Values // decoded body for form posts
}

// Server is a stub RFID API listening on a loopback port.
type Server struct {
	srv    *httptest.Server
	prefix string
	status int // forced status for every endpoint, 0 = normal behaviour

	mu       sync.Mutex
	records  []Record
	requests []Request
}

// Option configures a Server.
type Option func(*Server)

// WithPrefix mounts the endpoints under prefix instead of DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(s *Server) { s.prefix = prefix }
}

// WithStatus makes every endpoint answer with code and a plain-text body.
func WithStatus(code int) Option {
	return func(s *Server) { s.status = code }
}

// NewServer starts a stub serving records. Close it when done.
func NewServer(records []Record, opts ...Option) *Server {
	s := &Server{
		prefix:  DefaultPrefix,
		records: append([]Record(nil), records...),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	api := r.PathPrefix(s.prefix).Subrouter()
	api.HandleFunc("/get_data.php", s.handleGetData).Methods(http.MethodGet)
	api.HandleFunc("/update_status.php", s.handleUpdateStatus).Methods(http.MethodPost)

	s.srv = httptest.NewServer(s.recordRequests(r))
	return s
}

// URL is the server root, without the prefix.
func (s *Server) URL() string { return s.srv.URL }

// BaseURL is the value to hand to a client: URL plus prefix.
func (s *Server) BaseURL() string { return s.srv.URL + s.prefix }

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Records returns the current data set.
func (s *Server) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

func (s *Server) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		rec := Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		}
		if rec.ContentType == "application/x-www-form-urlencoded" {
			rec.Form, _ = url.ParseQuery(string(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		if s.status != 0 {
			http.Error(w, http.StatusText(s.status), s.status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGetData(w http.ResponseWriter, _ *http.Request) {
	records := s.Records()
	if records == nil {
		records = []Record{}
	}
	writeJSON(w, records)
}

// handleUpdateStatus flips the status of the matching record and echoes the
// decoded form back as a JSON object.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rfid := r.PostForm.Get("rfid")
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].RFID == rfid {
			s.records[i].Status = 1 - s.records[i].Status
		}
	}
	s.mu.Unlock()

	echo := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		echo[k] = r.PostForm.Get(k)
	}
	writeJSON(w, echo)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
