package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// RecordedRequest is one request captured by ApiMock.
type RecordedRequest struct {
	Headers map[string]string
	Queries map[string]string
	Body    map[string]any
}

type mockResponse struct {
	status int
	body   any
}

// ApiMock is an HTTP stand-in for third-party APIs. Responses are keyed by
// method and path; a path segment of "*" matches any value.
type ApiMock struct {
	mu               sync.Mutex
	server           *httptest.Server
	requests         map[string][]RecordedRequest
	responses        map[string]map[int]mockResponse
	defaultResponses map[string]mockResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:         map[string][]RecordedRequest{},
		responses:        map[string]map[int]mockResponse{},
		defaultResponses: map[string]mockResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	recorded := RecordedRequest{
		Headers: map[string]string{},
		Queries: map[string]string{},
		Body:    request,
	}
	for key, value := range r.Header {
		recorded.Headers[key] = value[0]
	}
	for key, value := range r.URL.Query() {
		recorded.Queries[key] = value[0]
	}

	a.mu.Lock()
	key := r.Method + r.URL.Path
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], recorded)
	resp := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	payload, _ := json.Marshal(resp.body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(payload)
}

// SetResponse sets the response for the index-th call. An index of -1 sets
// the default for every call without a specific response.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaultResponses[key] = mockResponse{status: status, body: response}
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]mockResponse{}
	}
	a.responses[key][index] = mockResponse{status: status, body: response}
}

// Requests returns the requests received for method and path.
func (a *ApiMock) Requests(method, path string) []RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]RecordedRequest(nil), a.requests[method+path]...)
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	requests := a.Requests(method, path)
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index].Body
}

// ClearResponses forgets recorded requests and configured responses whose
// key starts with method+path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prefix := method + path
	for key := range a.requests {
		if strings.HasPrefix(key, prefix) {
			delete(a.requests, key)
		}
	}
	for key := range a.responses {
		if strings.HasPrefix(key, prefix) {
			delete(a.responses, key)
		}
	}
	for key := range a.defaultResponses {
		if strings.HasPrefix(key, prefix) {
			delete(a.defaultResponses, key)
		}
	}
}

// responseFor must be called with mu held.
func (a *ApiMock) responseFor(method, path string, index int) mockResponse {
	for key, byIndex := range a.responses {
		if a.matchKey(key, method, path) {
			if resp, ok := byIndex[index]; ok {
				return withDefaultStatus(resp)
			}
		}
	}
	for key, resp := range a.defaultResponses {
		if a.matchKey(key, method, path) {
			return withDefaultStatus(resp)
		}
	}
	return mockResponse{status: http.StatusOK, body: map[string]any{}}
}

func withDefaultStatus(resp mockResponse) mockResponse {
	// WriteHeader panics on 0.
	if resp.status == 0 {
		resp.status = http.StatusOK
	}
	if resp.body == nil {
		resp.body = map[string]any{}
	}
	return resp
}

func (a *ApiMock) matchKey(key, method, path string) bool {
	if !strings.HasPrefix(key, method) {
		return false
	}
	return matchPath(strings.TrimPrefix(key, method), path)
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
