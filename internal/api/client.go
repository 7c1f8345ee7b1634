package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/codaya2005/PolyLab-EECE455/internal/logging"
	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

// Client is the backend contract consumed by the session, MFA, draft and
// classroom components.
type Client interface {
	GetProfile(ctx context.Context) (*model.UserProfile, error)
	Logout(ctx context.Context) error

	ListClassrooms(ctx context.Context) ([]*model.Classroom, error)
	CreateClassroom(ctx context.Context, name string) (*model.Classroom, error)
	JoinClassroom(ctx context.Context, code string) error

	ListAssignments(ctx context.Context, classroomId int64) ([]*model.Assignment, error)
	ListMaterials(ctx context.Context, classroomId int64) ([]*model.Material, error)
	ListSubmissionsForAssignment(ctx context.Context, assignmentId int64) ([]*model.Submission, error)

	SubmitAssignment(ctx context.Context, assignmentId int64, content string) error
	UploadAssignmentFile(ctx context.Context, assignmentId int64, file *model.FileUpload) error

	EnrollTotpMfa(ctx context.Context) (*model.MfaEnrollment, error)
	VerifyTotpMfa(ctx context.Context, code string, mfaToken string) error
	DisableTotpMfa(ctx context.Context, code string) error
}

const (
	defaultTimeout = 15 * time.Second
	listRetries    = 3
	listBaseDelay  = 200 * time.Millisecond
)

// HTTPClient talks to the PolyLab backend over JSON. Auth rides on the
// session cookie held in the jar.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
		timeout: timeout,
	}, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	if !out.Role.IsValid() {
		return nil, fmt.Errorf("profile has unknown role %q", out.Role)
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) ListClassrooms(ctx context.Context) ([]*model.Classroom, error) {
	return listWithRetry[model.Classroom](ctx, c, "/classrooms/")
}

func (c *HTTPClient) CreateClassroom(ctx context.Context, name string) (*model.Classroom, error) {
	var out model.Classroom
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/classrooms/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) JoinClassroom(ctx context.Context, code string) error {
	body := map[string]string{"code": code}
	return c.do(ctx, http.MethodPost, "/classrooms/join", body, nil)
}

func (c *HTTPClient) ListAssignments(ctx context.Context, classroomId int64) ([]*model.Assignment, error) {
	return listWithRetry[model.Assignment](ctx, c, fmt.Sprintf("/assignments/classroom/%d", classroomId))
}

func (c *HTTPClient) ListMaterials(ctx context.Context, classroomId int64) ([]*model.Material, error) {
	return listWithRetry[model.Material](ctx, c, fmt.Sprintf("/materials/classroom/%d", classroomId))
}

func (c *HTTPClient) ListSubmissionsForAssignment(ctx context.Context, assignmentId int64) ([]*model.Submission, error) {
	return listWithRetry[model.Submission](ctx, c, fmt.Sprintf("/submissions/assignment/%d", assignmentId))
}

func (c *HTTPClient) SubmitAssignment(ctx context.Context, assignmentId int64, content string) error {
	body := map[string]any{"assignment_id": assignmentId, "content": content}
	return c.do(ctx, http.MethodPost, "/submissions/", body, nil)
}

func (c *HTTPClient) UploadAssignmentFile(ctx context.Context, assignmentId int64, file *model.FileUpload) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", file.Filename)
	if err != nil {
		return err
	}
	if _, err := fw.Write(file.Data); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+fmt.Sprintf("/submissions/%d/upload", assignmentId), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *HTTPClient) EnrollTotpMfa(ctx context.Context) (*model.MfaEnrollment, error) {
	var out model.MfaEnrollment
	if err := c.do(ctx, http.MethodPost, "/auth/mfa/totp/enroll", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) VerifyTotpMfa(ctx context.Context, code string, mfaToken string) error {
	body := map[string]string{"code": code, "mfa_token": mfaToken}
	return c.do(ctx, http.MethodPost, "/auth/mfa/totp/verify", body, nil)
}

func (c *HTTPClient) DisableTotpMfa(ctx context.Context, code string) error {
	body := map[string]string{"code": code}
	return c.do(ctx, http.MethodPost, "/auth/mfa/totp/disable", body, nil)
}

func listWithRetry[T any](ctx context.Context, c *HTTPClient, path string) ([]*T, error) {
	return retryWithBackoff(ctx, listRetries, listBaseDelay, func() ([]*T, error) {
		var out []*T
		if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Debug(ctx, "sending request", zap.String("method", method), zap.String("path", path))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// checkStatus types a non-2xx response as *Error only when the body carries
// a server-authored message; responses without one stay opaque so callers
// fall back to their generic message.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(data, &payload); err == nil {
		msg = payload.Detail
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		return fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
