package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-be/internal/auth"
	"gallery-be/internal/config"
)

type fakeUploader struct {
	uploadedName string
	deletedURL   string
	err          error
}

func (f *fakeUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploadedName = filename
	return "https://gallery-media.s3.us-east-1.amazonaws.com/artwork-images/1-abc.jpg", nil
}

func (f *fakeUploader) Delete(ctx context.Context, imageURL string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedURL = imageURL
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := auth.HashPassword("gallery-admin-pass")
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@gallery.test",
		AdminPasswordHash: hash,
	}
}

func TestLogin(t *testing.T) {
	cfg := testConfig(t)

	t.Run("valid credentials issue an admin token", func(t *testing.T) {
		body := `{"email":"admin@gallery.test","password":"gallery-admin-pass"}`
		rec := httptest.NewRecorder()
		NewHandler(cfg, nil).Login(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		claims, err := auth.ParseJWT(cfg.JWTSecret, resp["token"])
		require.NoError(t, err)
		assert.Equal(t, "admin@gallery.test", claims.Email)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"admin@gallery.test","password":"wrong"}`
		rec := httptest.NewRecorder()
		NewHandler(cfg, nil).Login(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		body := `{"email":"someone@else.test","password":"gallery-admin-pass"}`
		rec := httptest.NewRecorder()
		NewHandler(cfg, nil).Login(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(cfg, nil).Login(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{oops")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func multipartImage(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	cfg := testConfig(t)

	t.Run("stores the file and returns its URL", func(t *testing.T) {
		uploader := &fakeUploader{}
		body, contentType := multipartImage(t, "image", "dawn.jpg")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		NewHandler(cfg, uploader).UploadImage(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp["url"], "artwork-images/")
		assert.Equal(t, "dawn.jpg", uploader.uploadedName)
	})

	t.Run("missing file field", func(t *testing.T) {
		body, contentType := multipartImage(t, "attachment", "dawn.jpg")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		NewHandler(cfg, &fakeUploader{}).UploadImage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("uploader failure maps to 500", func(t *testing.T) {
		uploader := &fakeUploader{err: errors.New("bucket unreachable")}
		body, contentType := multipartImage(t, "image", "dawn.jpg")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/images", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		NewHandler(cfg, uploader).UploadImage(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unconfigured hosting maps to 503", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(cfg, nil).UploadImage(rec, httptest.NewRequest(http.MethodPost, "/api/admin/images", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestDeleteImage(t *testing.T) {
	cfg := testConfig(t)

	t.Run("deletes by URL", func(t *testing.T) {
		uploader := &fakeUploader{}
		body := `{"url":"https://gallery-media.s3.us-east-1.amazonaws.com/artwork-images/1-abc.jpg"}`
		rec := httptest.NewRecorder()
		NewHandler(cfg, uploader).DeleteImage(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/images", strings.NewReader(body)))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, uploader.deletedURL, "artwork-images/1-abc.jpg")
	})

	t.Run("missing URL", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(cfg, &fakeUploader{}).DeleteImage(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/images", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
