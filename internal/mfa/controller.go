package mfa

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/codaya2005/PolyLab-EECE455/internal/api"
	"github.com/codaya2005/PolyLab-EECE455/internal/errdefs"
	"github.com/codaya2005/PolyLab-EECE455/internal/logging"
	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

// State of the TOTP setup flow. Secret, otpauth URI and enrollment token are
// only populated in StateAwaitingVerification and StateEnabled.
type State string

const (
	StateIdle                 State = "idle"
	StateEnrolling            State = "enrolling"
	StateAwaitingVerification State = "awaiting_verification"
	StateEnabled              State = "enabled"
)

const codeLength = 6

// API is the slice of the backend client the controller needs.
type API interface {
	EnrollTotpMfa(ctx context.Context) (*model.MfaEnrollment, error)
	VerifyTotpMfa(ctx context.Context, code string, mfaToken string) error
	DisableTotpMfa(ctx context.Context, code string) error
}

// SessionFlags is the controller's view of the session store: it reads the
// MFA flag to pick its starting state and writes it after a confirmed
// verify or disable.
type SessionFlags interface {
	MfaEnabled() bool
	SetMfaEnabled(enabled bool)
}

// Snapshot is a value copy of the controller's visible state.
type Snapshot struct {
	State       State
	Secret      string
	OtpauthURI  string
	CodeInput   string
	LastError   string
	LastSuccess string
}

// Controller drives TOTP second-factor setup, verification and disablement.
// The same controller backs both the student and instructor dashboards.
// The lock is released around network calls so the in-flight state stays
// observable; StateEnrolling guards enroll re-entry, busy guards verify and
// disable. Hosting views additionally disable triggers whenever the state is
// not the operation's precondition.
type Controller struct {
	api     API
	session SessionFlags

	mu          sync.Mutex
	state       State
	busy        bool
	secret      string
	otpauthURI  string
	token       string
	codeInput   string
	lastError   string
	lastSuccess string
}

func NewController(apiClient API, session SessionFlags) *Controller {
	state := StateIdle
	if session.MfaEnabled() {
		state = StateEnabled
	}
	return &Controller{api: apiClient, session: session, state: state}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:       c.state,
		Secret:      c.secret,
		OtpauthURI:  c.otpauthURI,
		CodeInput:   c.codeInput,
		LastError:   c.lastError,
		LastSuccess: c.lastSuccess,
	}
}

// StartEnroll begins a new TOTP setup. Valid only from StateIdle. On failure
// the controller falls back to StateEnabled when the session already has MFA
// enabled (a failed restart of enrollment), otherwise to a fresh StateIdle.
func (c *Controller) StartEnroll(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: start enroll from %s", errdefs.ErrInvalidState, state)
	}

	c.state = StateEnrolling
	c.lastError = ""
	c.lastSuccess = ""
	c.mu.Unlock()

	enrollment, err := c.api.EnrollTotpMfa(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.lastError = api.UserMessage(err, "Failed to start MFA setup.")
		if c.session.MfaEnabled() {
			c.state = StateEnabled
		} else {
			c.state = StateIdle
		}
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "mfa enrollment failed", zap.Error(err))
		}
		return err
	}

	c.secret = enrollment.Secret
	c.otpauthURI = enrollment.Otpauth
	c.token = enrollment.MfaToken
	c.state = StateAwaitingVerification
	return nil
}

// SetCodeInput records the user's code entry, normalized to at most six
// digits. Always legal; non-digits are dropped.
func (c *Controller) SetCodeInput(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codeInput = normalizeCode(raw)
}

// SubmitCode verifies the entered code against the pending enrollment. The
// verify call uses the token from the most recent enroll and only fires once
// exactly six digits are present. On failure the secret and otpauth URI stay
// visible so the user can retry.
func (c *Controller) SubmitCode(ctx context.Context, code string) error {
	c.mu.Lock()

	if c.state != StateAwaitingVerification {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: verify from %s", errdefs.ErrInvalidState, state)
	}
	if c.token == "" {
		c.mu.Unlock()
		return errdefs.ErrNoEnrollment
	}
	if c.busy {
		c.mu.Unlock()
		return fmt.Errorf("%w: verification in flight", errdefs.ErrInvalidState)
	}

	normalized := normalizeCode(code)
	c.codeInput = normalized
	if len(normalized) != codeLength {
		c.lastError = "Enter the 6-digit code from your authenticator app."
		c.mu.Unlock()
		return fmt.Errorf("%w: code must be %d digits", errdefs.ErrValidation, codeLength)
	}

	c.busy = true
	c.lastError = ""
	c.lastSuccess = ""
	token := c.token
	c.mu.Unlock()

	err := c.api.VerifyTotpMfa(ctx, normalized, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		c.lastError = api.UserMessage(err, "Failed to verify code. Try again.")
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "mfa verification failed", zap.Error(err))
		}
		return err
	}

	c.state = StateEnabled
	c.lastSuccess = "MFA enabled. Use your authenticator app for future logins."
	c.session.SetMfaEnabled(true)
	return nil
}

// Disable turns MFA off with a current TOTP code. An empty code fails
// locally without a network call.
func (c *Controller) Disable(ctx context.Context, code string) error {
	c.mu.Lock()

	if c.state != StateEnabled {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: disable from %s", errdefs.ErrInvalidState, state)
	}
	if c.busy {
		c.mu.Unlock()
		return fmt.Errorf("%w: disable in flight", errdefs.ErrInvalidState)
	}

	c.lastError = ""
	c.lastSuccess = ""

	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		c.lastError = "Enter your current TOTP code to disable."
		c.mu.Unlock()
		return fmt.Errorf("%w: empty disable code", errdefs.ErrValidation)
	}

	c.busy = true
	c.mu.Unlock()

	err := c.api.DisableTotpMfa(ctx, trimmed)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		c.lastError = api.UserMessage(err, "Unable to disable MFA.")
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "mfa disable failed", zap.Error(err))
		}
		return err
	}

	c.state = StateIdle
	c.secret = ""
	c.otpauthURI = ""
	c.token = ""
	c.codeInput = ""
	c.lastSuccess = "MFA disabled."
	c.session.SetMfaEnabled(false)
	return nil
}

func normalizeCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == codeLength {
			break
		}
	}
	return b.String()
}
