package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"service-rental/internal/apperr"
	"service-rental/internal/http/handlers"
)

type stubLicenseImageUsecase struct {
	attachFn func(ctx context.Context, id uuid.UUID, data []byte, mediaType string) (string, error)
}

func (s *stubLicenseImageUsecase) Attach(ctx context.Context, id uuid.UUID, data []byte, mediaType string) (string, error) {
	return s.attachFn(ctx, id, data, mediaType)
}

func multipartBody(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="cnh"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func uploadRequest(t *testing.T, id, field, contentType string, data []byte) *http.Request {
	t.Helper()

	body, ct := multipartBody(t, field, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/couriers/"+id+"/license-image", body)
	req.Header.Set("Content-Type", ct)
	return withURLParam(req, "id", id)
}

func TestLicenseImageHandler_Upload_OK(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	h := handlers.NewLicenseImageHandler(testLogger(), &stubLicenseImageUsecase{
		attachFn: func(_ context.Context, got uuid.UUID, data []byte, mediaType string) (string, error) {
			require.Equal(t, id, got)
			require.Equal(t, []byte("PNGDATA"), data)
			require.Equal(t, "image/png", mediaType)
			return id.String() + ".png", nil
		},
	}, 1<<20)

	rr := httptest.NewRecorder()
	h.Upload(rr, uploadRequest(t, id.String(), "file", "image/png", []byte("PNGDATA")))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, id.String()+".png", resp["path"])
}

func TestLicenseImageHandler_Upload_MissingFile(t *testing.T) {
	t.Parallel()

	h := handlers.NewLicenseImageHandler(testLogger(), &stubLicenseImageUsecase{}, 1<<20)

	rr := httptest.NewRecorder()
	h.Upload(rr, uploadRequest(t, uuid.NewString(), "other", "image/png", []byte("x")))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "file is required", decodeError(t, rr).Error)
}

func TestLicenseImageHandler_Upload_NotMultipart(t *testing.T) {
	t.Parallel()

	h := handlers.NewLicenseImageHandler(testLogger(), &stubLicenseImageUsecase{}, 1<<20)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/couriers/"+id+"/license-image", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Upload(rr, withURLParam(req, "id", id))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLicenseImageHandler_Upload_TooLarge(t *testing.T) {
	t.Parallel()

	h := handlers.NewLicenseImageHandler(testLogger(), &stubLicenseImageUsecase{}, 16)

	rr := httptest.NewRecorder()
	h.Upload(rr, uploadRequest(t, uuid.NewString(), "file", "image/png", bytes.Repeat([]byte("a"), 17)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestLicenseImageHandler_Upload_ServiceErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err    error
		status int
	}{
		"disallowed type": {err: apperr.Invalid("only PNG or BMP are allowed", "file"), status: http.StatusBadRequest},
		"unknown courier": {err: apperr.ErrNotFound, status: http.StatusNotFound},
		"storage failure": {err: context.DeadlineExceeded, status: http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewLicenseImageHandler(testLogger(), &stubLicenseImageUsecase{
				attachFn: func(context.Context, uuid.UUID, []byte, string) (string, error) {
					return "", tc.err
				},
			}, 1<<20)

			rr := httptest.NewRecorder()
			h.Upload(rr, uploadRequest(t, uuid.NewString(), "file", "image/jpeg", []byte("x")))

			require.Equal(t, tc.status, rr.Code)
		})
	}
}
