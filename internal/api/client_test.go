package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL, 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestGetProfile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		json.NewEncoder(w).Encode(model.UserProfile{
			Id: 7, Email: "x@example.com", Role: model.RoleInstructor, TotpEnabled: true,
		})
	}))

	u, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.Id)
	assert.True(t, u.TotpEnabled)
}

func TestGetProfileRejectsUnknownRole(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "email": "x@example.com", "role": "superuser",
		})
	}))

	_, err := c.GetProfile(context.Background())
	require.Error(t, err)
	// Not a server-reported failure, so callers get their generic fallback.
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func TestServerErrorCarriesDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Past due date"})
	}))

	err := c.SubmitAssignment(context.Background(), 1, "late answer")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Past due date", apiErr.Message)
	assert.Equal(t, "Past due date", UserMessage(err, "fallback"))
}

func TestUnknownErrorFallsBack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>panic</html>"))
	}))

	err := c.SubmitAssignment(context.Background(), 1, "answer")
	require.Error(t, err)

	// A non-JSON body is not a server-authored message: the error stays
	// untyped and callers get their generic fallback, never raw internals.
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))

	assert.Equal(t, "fallback", UserMessage(errors.New("dial tcp: refused"), "fallback"))
}

func TestListRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions/assignment/7", r.URL.Path)
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"detail": "try later"})
			return
		}
		json.NewEncoder(w).Encode([]*model.Submission{{Id: 1, AssignmentId: 7}})
	}))

	subs, err := c.ListSubmissionsForAssignment(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestListDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "You are not enrolled in this class"})
	}))

	_, err := c.ListAssignments(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "You are not enrolled in this class", UserMessage(err, "fallback"))
}

func TestJoinClassroomSendsCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classrooms/join", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ABC123", body["code"])
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))

	require.NoError(t, c.JoinClassroom(context.Background(), "ABC123"))
}

func TestVerifyTotpMfaSendsCodeAndToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/mfa/totp/verify", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "123456", body["code"])
		assert.Equal(t, "tok1", body["mfa_token"])
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))

	require.NoError(t, c.VerifyTotpMfa(context.Background(), "123456", "tok1"))
}

func TestUploadAssignmentFileIsMultipart(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions/3/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "report.pdf", header.Filename)
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))

	file := &model.FileUpload{Filename: "report.pdf", Data: []byte("%PDF-1.4")}
	require.NoError(t, c.UploadAssignmentFile(context.Background(), 3, file))
}
