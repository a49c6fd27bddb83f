package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/RigobertoEHA1/chismezon/internal/config"
	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/jwt"
	"github.com/RigobertoEHA1/chismezon/internal/middleware"
	"github.com/RigobertoEHA1/chismezon/internal/render"
)

type MockNewsService struct {
	MockCreate func(data domain.NewsCreationData) (domain.News, error)
	MockGet    func(id domain.NewsId) (domain.News, error)
	MockGetAll func() ([]domain.News, error)
	MockUpdate func(id domain.NewsId, data domain.NewsUpdateData) error
	MockDelete func(id domain.NewsId) error
}

func (m *MockNewsService) Create(data domain.NewsCreationData) (domain.News, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.News{}, nil
}

func (m *MockNewsService) Get(id domain.NewsId) (domain.News, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.News{}, nil
}

func (m *MockNewsService) GetAll() ([]domain.News, error) {
	if m.MockGetAll != nil {
		return m.MockGetAll()
	}
	return []domain.News{}, nil
}

func (m *MockNewsService) Update(id domain.NewsId, data domain.NewsUpdateData) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, data)
	}
	return nil
}

func (m *MockNewsService) Delete(id domain.NewsId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockCommentService struct {
	MockList   func(newsId domain.NewsId, parent *domain.CommentId) ([]domain.Comment, error)
	MockCreate func(data domain.CommentCreationData) (domain.Comment, error)
}

func (m *MockCommentService) List(newsId domain.NewsId, parent *domain.CommentId) ([]domain.Comment, error) {
	if m.MockList != nil {
		return m.MockList(newsId, parent)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentService) Create(data domain.CommentCreationData) (domain.Comment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Comment{}, nil
}

type MockReactionService struct {
	MockGet  func(device domain.DeviceId, news domain.NewsId) (domain.Reaction, bool, error)
	MockCast func(device domain.DeviceId, news domain.NewsId, kind string) (domain.Reaction, error)
}

func (m *MockReactionService) Get(device domain.DeviceId, news domain.NewsId) (domain.Reaction, bool, error) {
	if m.MockGet != nil {
		return m.MockGet(device, news)
	}
	return domain.Reaction{}, false, nil
}

func (m *MockReactionService) Cast(device domain.DeviceId, news domain.NewsId, kind string) (domain.Reaction, error) {
	if m.MockCast != nil {
		return m.MockCast(device, news, kind)
	}
	return domain.Reaction{}, nil
}

type MockAuthService struct {
	MockLogin func(password string) (string, error)
}

func (m *MockAuthService) Login(password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(password)
	}
	return "", nil
}

type MockMediaService struct {
	MockSaveImage func(data io.Reader) (string, error)
}

func (m *MockMediaService) SaveImage(data io.Reader) (string, error) {
	if m.MockSaveImage != nil {
		return m.MockSaveImage(data)
	}
	return "", nil
}

type MockPinger struct {
	MockPing func() error
}

func (m *MockPinger) Ping() error {
	if m.MockPing != nil {
		return m.MockPing()
	}
	return nil
}

type mockServices struct {
	news     *MockNewsService
	comment  *MockCommentService
	reaction *MockReactionService
	auth     *MockAuthService
	media    *MockMediaService
	pinger   *MockPinger
}

func newMockServices() *mockServices {
	return &mockServices{
		news:     &MockNewsService{},
		comment:  &MockCommentService{},
		reaction: &MockReactionService{},
		auth:     &MockAuthService{},
		media:    &MockMediaService{},
		pinger:   &MockPinger{},
	}
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{
		JwtTTLMinutes:    10,
		MaxCommentLength: 300,
		PreviewLength:    300,
	}}
}

func testJwt() *jwt.Jwt {
	return jwt.New("testJwtKey", 10*time.Minute)
}

// newTestRouter mounts the handler on the same path templates the real
// router uses, without the outer middleware chain.
func newTestRouter(svc *mockServices, cfg *config.Config) *mux.Router {
	h := New(svc.news, svc.comment, svc.reaction, svc.auth, svc.media, render.New(), cfg, svc.pinger)

	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/auth/login", h.Login).Methods("POST")
	v1.HandleFunc("/auth/logout", h.Logout).Methods("POST")
	v1.Handle("/auth/me", middleware.WithAuthState(testJwt())(http.HandlerFunc(h.Me))).Methods("GET")
	v1.HandleFunc("/noticias", h.GetAllNews).Methods("GET")
	v1.HandleFunc("/noticias", h.CreateNews).Methods("POST")
	v1.HandleFunc("/noticias/{id}", h.GetNews).Methods("GET")
	v1.HandleFunc("/noticias/{id}", h.UpdateNews).Methods("PUT")
	v1.HandleFunc("/noticias/{id}", h.DeleteNews).Methods("DELETE")
	v1.HandleFunc("/noticias/{id}/comentarios", h.GetComments).Methods("GET")
	v1.HandleFunc("/noticias/{id}/comentarios", h.CreateComment).Methods("POST")
	v1.HandleFunc("/noticias/{id}/reaccion", h.GetReaction).Methods("GET")
	v1.HandleFunc("/noticias/{id}/reaccion", h.CastReaction).Methods("POST")
	v1.HandleFunc("/admin/uploads", h.Upload).Methods("POST")
	return r
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func doRequest(r *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(v))
}
