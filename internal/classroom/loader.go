package classroom

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/codaya2005/PolyLab-EECE455/internal/cache"
	"github.com/codaya2005/PolyLab-EECE455/internal/drafts"
	"github.com/codaya2005/PolyLab-EECE455/internal/errdefs"
	"github.com/codaya2005/PolyLab-EECE455/internal/logging"
	"github.com/codaya2005/PolyLab-EECE455/internal/model"
)

// API is the slice of the backend client the loader needs.
type API interface {
	ListClassrooms(ctx context.Context) ([]*model.Classroom, error)
	CreateClassroom(ctx context.Context, name string) (*model.Classroom, error)
	JoinClassroom(ctx context.Context, code string) error
	ListAssignments(ctx context.Context, classroomId int64) ([]*model.Assignment, error)
	ListMaterials(ctx context.Context, classroomId int64) ([]*model.Material, error)
	ListSubmissionsForAssignment(ctx context.Context, assignmentId int64) ([]*model.Submission, error)
}

var joinCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,10}$`)

const (
	classroomsCacheKey = "classrooms"
	listCacheTTL       = 30 * time.Second
)

// View is everything a classroom page renders: the classroom itself, its
// assignments and materials, and the caller's submission history per
// assignment.
type View struct {
	Classroom   *model.Classroom
	Assignments []*model.Assignment
	Materials   []*model.Material
	History     map[int64][]*model.Submission
}

// Loader orchestrates the reads behind a classroom view and the classroom
// list operations on the dashboards. Completed loads seed the draft store's
// submission-history view.
type Loader struct {
	api    API
	drafts *drafts.Store
	cache  cache.Cache
}

func NewLoader(apiClient API, draftStore *drafts.Store, c cache.Cache) *Loader {
	return &Loader{api: apiClient, drafts: draftStore, cache: c}
}

// Load resolves one classroom view. The membership check and the assignment
// and material lists are primary content: any of them failing fails the
// load. The per-assignment history fetches are enrichment: each runs in its
// own goroutine and a failure yields an empty history for that assignment
// only.
func (l *Loader) Load(ctx context.Context, classroomId int64) (*View, error) {
	classes, err := cachedList(ctx, l.cache, classroomsCacheKey, l.api.ListClassrooms)
	if err != nil {
		return nil, err
	}

	var classroom *model.Classroom
	for _, c := range classes {
		if c.Id == classroomId {
			classroom = c
			break
		}
	}
	if classroom == nil {
		return nil, fmt.Errorf("%w: classroom %d", errdefs.ErrNotEnrolled, classroomId)
	}

	var (
		assignments []*model.Assignment
		materials   []*model.Material
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = cachedList(gctx, l.cache,
			fmt.Sprintf("assignments:%d", classroomId),
			func(ctx context.Context) ([]*model.Assignment, error) {
				return l.api.ListAssignments(ctx, classroomId)
			})
		return err
	})
	g.Go(func() error {
		var err error
		materials, err = cachedList(gctx, l.cache,
			fmt.Sprintf("materials:%d", classroomId),
			func(ctx context.Context) ([]*model.Material, error) {
				return l.api.ListMaterials(ctx, classroomId)
			})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	history := l.fetchHistories(ctx, assignments)
	l.drafts.ReplaceHistory(history)

	return &View{
		Classroom:   classroom,
		Assignments: assignments,
		Materials:   materials,
		History:     history,
	}, nil
}

// fetchHistories fans out one submission fetch per assignment. Results land
// in the map as they complete; a failed fetch degrades to an empty history
// without affecting the others.
func (l *Loader) fetchHistories(ctx context.Context, assignments []*model.Assignment) map[int64][]*model.Submission {
	history := make(map[int64][]*model.Submission, len(assignments))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, a := range assignments {
		wg.Add(1)
		go func(assignmentId int64) {
			defer wg.Done()
			subs, err := l.api.ListSubmissionsForAssignment(ctx, assignmentId)
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Warn(ctx, "submission history fetch failed",
						zap.Int64("assignment_id", assignmentId), zap.Error(err))
				}
				subs = []*model.Submission{}
			}
			mu.Lock()
			history[assignmentId] = subs
			mu.Unlock()
		}(a.Id)
	}
	wg.Wait()

	return history
}

// Join enrolls the caller in a classroom by code. Codes are 6 to 10
// alphanumeric characters; anything else is rejected locally without a
// network call.
func (l *Loader) Join(ctx context.Context, code string) error {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if !joinCodePattern.MatchString(trimmed) {
		return fmt.Errorf("%w: malformed join code", errdefs.ErrValidation)
	}
	if err := l.api.JoinClassroom(ctx, trimmed); err != nil {
		return err
	}
	l.cache.Delete(ctx, classroomsCacheKey)
	return nil
}

// Create makes a new classroom (instructor dashboards only; the server
// enforces the role).
func (l *Loader) Create(ctx context.Context, name string) (*model.Classroom, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty classroom name", errdefs.ErrValidation)
	}
	classroom, err := l.api.CreateClassroom(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	l.cache.Delete(ctx, classroomsCacheKey)
	return classroom, nil
}

// cachedList reads a list through the cache: a hit decodes the stored
// payload, a miss fetches and stores it with a short TTL.
func cachedList[T any](
	ctx context.Context,
	c cache.Cache,
	key string,
	fetch func(ctx context.Context) ([]*T, error),
) ([]*T, error) {
	if data, ok := c.Get(ctx, key); ok {
		var out []*T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		c.Delete(ctx, key)
	}

	out, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(out); err == nil {
		c.Set(ctx, key, data, listCacheTTL)
	}
	return out, nil
}
