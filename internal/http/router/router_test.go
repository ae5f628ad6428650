package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"service-rental/internal/apperr"
	"service-rental/internal/domain"
	"service-rental/internal/http/handlers"
	"service-rental/internal/http/router"
	"service-rental/internal/logx"
)

type motoStub struct {
	updated []string
}

func (s *motoStub) Register(_ context.Context, in domain.MotoInput) (*domain.Moto, error) {
	return &domain.Moto{ID: uuid.New(), Plate: in.Plate}, nil
}

func (s *motoStub) Get(context.Context, uuid.UUID) (*domain.Moto, error) {
	return nil, apperr.ErrNotFound
}

func (s *motoStub) List(context.Context, string) ([]domain.Moto, error) {
	return []domain.Moto{}, nil
}

func (s *motoStub) UpdatePlate(_ context.Context, id uuid.UUID, plate string) (*domain.Moto, error) {
	s.updated = append(s.updated, plate)
	return &domain.Moto{ID: id, Plate: plate}, nil
}

func (s *motoStub) Delete(context.Context, uuid.UUID) error { return nil }

func newRouter(motos *motoStub) http.Handler {
	return router.New(router.Params{
		Logger: logx.Nop(),
		Motos:  handlers.NewMotoHandler(logx.Nop(), motos),
	})
}

func TestNew_NotNil(t *testing.T) {
	var _ http.Handler = router.New(router.Params{})
}

func TestRouter_ServiceRoutes(t *testing.T) {
	t.Parallel()

	r := newRouter(&motoStub{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("Content-Type"))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"error":"route not found"}`, rr.Body.String())
}

func TestRouter_PlateAliases(t *testing.T) {
	t.Parallel()

	motos := &motoStub{}
	r := newRouter(motos)
	id := uuid.NewString()

	for _, path := range []string{"/motos/" + id + "/plate", "/motos/" + id + "/placa"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"plate":"abc"}`)))
		require.Equal(t, http.StatusOK, rr.Code, path)
	}
	require.Equal(t, []string{"abc", "abc"}, motos.updated)
}

func TestRouter_MotoRoutes(t *testing.T) {
	t.Parallel()

	r := newRouter(&motoStub{})
	id := uuid.NewString()

	cases := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodPost, "/motos", `{"identifier":"m","year":2024,"model":"x","plate":"p"}`, http.StatusCreated},
		{http.MethodGet, "/motos", "", http.StatusOK},
		{http.MethodGet, "/motos/" + id, "", http.StatusNotFound},
		{http.MethodGet, "/motos/not-a-uuid", "", http.StatusBadRequest},
		{http.MethodDelete, "/motos/" + id, "", http.StatusNoContent},
		{http.MethodPatch, "/motos/" + id, "", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		require.Equal(t, tc.status, rr.Code, tc.method+" "+tc.path)
	}
}

func TestRouter_RateLimitApplied(t *testing.T) {
	t.Parallel()

	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	r := router.New(router.Params{RateLimit: deny})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
}
