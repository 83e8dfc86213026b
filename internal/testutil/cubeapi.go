package testutil

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/atomic"
)

// CubeServer is an in process fake of the Cube REST API. Load responses
// are scripted with EnqueueLoad and served in order, once the queue drains
// every further load request gets an empty result set. A non empty Token
// makes the server reject requests whose Authorization header differs.
type CubeServer struct {
	Token string

	server    *httptest.Server
	loadCalls *atomic.Int64

	mu        sync.Mutex
	loadQueue []scriptedResponse
	metaBody  string
	lastLoad  []byte
}

type scriptedResponse struct {
	status int
	body   string
}

func NewCubeServer(token string) *CubeServer {
	s := &CubeServer{
		Token:     token,
		loadCalls: atomic.NewInt64(0),
	}

	router := httprouter.New()
	router.POST("/cubejs-api/v1/load", s.handleLoad)
	router.GET("/cubejs-api/v1/meta", s.handleMeta)
	s.server = httptest.NewServer(router)
	return s
}

// EnqueueLoad scripts the response for one upcoming load request.
func (s *CubeServer) EnqueueLoad(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadQueue = append(s.loadQueue, scriptedResponse{status: status, body: body})
}

// SetMetaBody replaces the payload served on the meta route.
func (s *CubeServer) SetMetaBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metaBody = body
}

// LoadCalls returns how many load requests the server has received.
func (s *CubeServer) LoadCalls() int64 {
	return s.loadCalls.Load()
}

// LastLoadBody returns the request body of the most recent load request.
func (s *CubeServer) LastLoadBody() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLoad
}

func (s *CubeServer) URL() string {
	return s.server.URL
}

func (s *CubeServer) Close() {
	s.server.Close()
}

func (s *CubeServer) handleLoad(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.loadCalls.Inc()

	if !s.authorized(r) {
		http.Error(w, "Invalid token", http.StatusForbidden)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	PanicIfError(err)

	s.mu.Lock()
	s.lastLoad = body
	next := scriptedResponse{status: http.StatusOK, body: `{"data":[]}`}
	if len(s.loadQueue) > 0 {
		next = s.loadQueue[0]
		s.loadQueue = s.loadQueue[1:]
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(next.status)
	_, _ = w.Write([]byte(next.body))
}

func (s *CubeServer) handleMeta(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(r) {
		http.Error(w, "Invalid token", http.StatusForbidden)
		return
	}

	s.mu.Lock()
	body := s.metaBody
	s.mu.Unlock()
	if body == "" {
		body = `{"cubes":[]}`
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (s *CubeServer) authorized(r *http.Request) bool {
	return s.Token == "" || r.Header.Get("Authorization") == s.Token
}
