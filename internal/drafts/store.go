package drafts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/codaya2005/PolyLab-EECE455/internal/api"
	"github.com/codaya2005/PolyLab-EECE455/internal/errdefs"
	"github.com/codaya2005/PolyLab-EECE455/internal/logging"
	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

// API is the slice of the backend client the draft store needs.
type API interface {
	SubmitAssignment(ctx context.Context, assignmentId int64, content string) error
	UploadAssignmentFile(ctx context.Context, assignmentId int64, file *model.FileUpload) error
	ListSubmissionsForAssignment(ctx context.Context, assignmentId int64) ([]*model.Submission, error)
}

// Draft is the in-progress answer for one assignment.
type Draft struct {
	Content     string
	File        *model.FileUpload
	Submitting  bool
	LastError   string
	LastSuccess string
}

// Store keeps one independent draft per assignment id plus the
// server-confirmed submission history. Drafts are created lazily on first
// interaction and live for the lifetime of the view.
type Store struct {
	api API

	mu      sync.Mutex
	drafts  map[int64]*Draft
	history map[int64][]*model.Submission
}

func NewStore(apiClient API) *Store {
	return &Store{
		api:     apiClient,
		drafts:  make(map[int64]*Draft),
		history: make(map[int64][]*model.Submission),
	}
}

// draftLocked returns the draft for an assignment, creating an empty one on
// first use. Caller holds s.mu.
func (s *Store) draftLocked(assignmentId int64) *Draft {
	d, ok := s.drafts[assignmentId]
	if !ok {
		d = &Draft{}
		s.drafts[assignmentId] = d
	}
	return d
}

// Draft returns a value copy of the assignment's draft.
func (s *Store) Draft(assignmentId int64) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.draftLocked(assignmentId)
}

// UpdateContent replaces the draft text. Error and success messages persist
// until the next submit attempt.
func (s *Store) UpdateContent(assignmentId int64, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftLocked(assignmentId).Content = content
}

// AttachFile sets or, with nil, removes the draft's attachment.
func (s *Store) AttachFile(assignmentId int64, file *model.FileUpload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftLocked(assignmentId).File = file
}

// History returns the confirmed submissions for one assignment.
func (s *Store) History(assignmentId int64) []*model.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.Submission(nil), s.history[assignmentId]...)
}

// ReplaceHistory swaps in the full submission-history mapping produced by a
// classroom load.
func (s *Store) ReplaceHistory(history map[int64][]*model.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make(map[int64][]*model.Submission, len(history))
	for id, subs := range history {
		s.history[id] = subs
	}
}

// SubmittedCount reports how many assignments have at least one confirmed
// submission.
func (s *Store) SubmittedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, subs := range s.history {
		if len(subs) > 0 {
			n++
		}
	}
	return n
}

// Submit sends the draft for one assignment: the attachment first when
// present, then the trimmed text, then a refresh of that assignment's
// history. The first failure aborts the rest and keeps the draft intact for
// retry; success clears the draft. A submit for a different assignment may
// run concurrently, a second submit for the same assignment is rejected.
func (s *Store) Submit(ctx context.Context, assignmentId int64) error {
	s.mu.Lock()
	d := s.draftLocked(assignmentId)

	if d.Submitting {
		s.mu.Unlock()
		return fmt.Errorf("%w: assignment %d", errdefs.ErrAlreadySubmitting, assignmentId)
	}

	content := strings.TrimSpace(d.Content)
	file := d.File
	if content == "" && file == nil {
		d.LastError = "Add a short answer or attach a document before submitting."
		s.mu.Unlock()
		return fmt.Errorf("%w: empty submission", errdefs.ErrValidation)
	}

	d.Submitting = true
	d.LastError = ""
	d.LastSuccess = ""
	s.mu.Unlock()

	if file != nil {
		if err := s.api.UploadAssignmentFile(ctx, assignmentId, file); err != nil {
			s.failSubmit(ctx, assignmentId, err)
			return err
		}
	}

	if content != "" {
		if err := s.api.SubmitAssignment(ctx, assignmentId, content); err != nil {
			s.failSubmit(ctx, assignmentId, err)
			return err
		}
	}

	subs, err := s.api.ListSubmissionsForAssignment(ctx, assignmentId)
	if err != nil {
		s.failSubmit(ctx, assignmentId, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[assignmentId] = subs
	d = s.draftLocked(assignmentId)
	d.Content = ""
	d.File = nil
	d.Submitting = false
	d.LastSuccess = "Submitted!"
	return nil
}

func (s *Store) failSubmit(ctx context.Context, assignmentId int64, err error) {
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Warn(ctx, "submission failed",
			zap.Int64("assignment_id", assignmentId), zap.Error(err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draftLocked(assignmentId)
	d.Submitting = false
	d.LastError = api.UserMessage(err, "Failed to submit. Try again.")
}

// Numbering assigns display numbers to assignments by ascending creation
// time, ids breaking ties. The result is the same for any permutation of
// the input: unique integers starting at 1.
func Numbering(assignments []*model.Assignment) map[int64]int {
	sorted := append([]*model.Assignment(nil), assignments...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].Id < sorted[j].Id
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	numbers := make(map[int64]int, len(sorted))
	for i, a := range sorted {
		numbers[a.Id] = i + 1
	}
	return numbers
}
