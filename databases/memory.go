package databases

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/festivalops/report-api/models"
)

// MemoryStore is the in-process backend used when Mongo is unconfigured or
// has been demoted away from. It holds canonical report/comment records plus
// a newest-first report order index and a comment-ids-per-report index, all
// guarded by one mutex so counter updates can never lose increments.
//
// It implements both ReportDatabase and CommentDatabase.
type MemoryStore struct {
	mu               sync.Mutex
	reports          map[string]models.Report
	reportOrder      []string
	comments         map[string]models.Comment
	commentsByReport map[string][]string
}

// NewMemoryStore returns an empty store. Construct one per process (or per
// test); there is no package-level instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports:          make(map[string]models.Report),
		comments:         make(map[string]models.Comment),
		commentsByReport: make(map[string][]string),
	}
}

func (m *MemoryStore) Insert(_ context.Context, report models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports[report.ID] = report
	m.reportOrder = append([]string{report.ID}, m.reportOrder...)
	return nil
}

func (m *MemoryStore) FindByID(_ context.Context, id string) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	report.ViewCount++
	m.reports[id] = report
	return &report, nil
}

func (m *MemoryStore) Exists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.reports[id]
	return ok, nil
}

func (m *MemoryStore) List(_ context.Context, page, pageSize int) ([]models.Report, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := len(m.reportOrder)
	start, end := PageBounds(total, page, pageSize)

	reports := make([]models.Report, 0, end-start)
	for _, id := range m.reportOrder[start:end] {
		report, ok := m.reports[id]
		if !ok {
			continue
		}
		report.CommentCount = int64(len(m.commentsByReport[id]))
		reports = append(reports, report)
	}
	return reports, int64(total), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reports[id]; !ok {
		return false, nil
	}
	delete(m.reports, id)

	for i, rid := range m.reportOrder {
		if rid == id {
			m.reportOrder = append(m.reportOrder[:i], m.reportOrder[i+1:]...)
			break
		}
	}

	// cascade to the report's comments
	for _, cid := range m.commentsByReport[id] {
		delete(m.comments, cid)
	}
	delete(m.commentsByReport, id)
	return true, nil
}

func (m *MemoryStore) Vote(_ context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	report.Upvotes, report.Downvotes = applyVote(report.Upvotes, report.Downvotes, action)
	m.reports[id] = report
	return &models.VoteCounts{Upvotes: report.Upvotes, Downvotes: report.Downvotes}, nil
}

func (m *MemoryStore) Support(_ context.Context, id string, support bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[id]
	if !ok {
		return 0, ErrNotFound
	}
	if support {
		report.SupportCount++
	} else if report.SupportCount > 0 {
		report.SupportCount--
	}
	m.reports[id] = report
	return report.SupportCount, nil
}

func (m *MemoryStore) CountSince(_ context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, report := range m.reports {
		if !report.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) InsertComment(_ context.Context, comment models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.comments[comment.ID] = comment
	m.commentsByReport[comment.ReportID] = append(m.commentsByReport[comment.ReportID], comment.ID)
	return nil
}

func (m *MemoryStore) FindByReportID(_ context.Context, reportID string) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	comments := make([]models.Comment, 0, len(m.commentsByReport[reportID]))
	for _, cid := range m.commentsByReport[reportID] {
		if comment, ok := m.comments[cid]; ok {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MemoryStore) DeleteComment(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	comment, ok := m.comments[id]
	if !ok {
		return false, nil
	}
	delete(m.comments, id)

	ids := m.commentsByReport[comment.ReportID]
	for i, cid := range ids {
		if cid == id {
			m.commentsByReport[comment.ReportID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *MemoryStore) VoteComment(_ context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	comment, ok := m.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	comment.Upvotes, comment.Downvotes = applyVote(comment.Upvotes, comment.Downvotes, action)
	m.comments[id] = comment
	return &models.VoteCounts{Upvotes: comment.Upvotes, Downvotes: comment.Downvotes}, nil
}

func (m *MemoryStore) CountCommentsSince(_ context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, comment := range m.comments {
		if !comment.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// applyVote adjusts vote counters for an action, clamping removals at zero.
func applyVote(up, down int64, action models.VoteAction) (int64, int64) {
	switch action {
	case models.ActionUpvote:
		up++
	case models.ActionDownvote:
		down++
	case models.ActionRemoveUpvote:
		if up > 0 {
			up--
		}
	case models.ActionRemoveDownvote:
		if down > 0 {
			down--
		}
	}
	return up, down
}

// MemoryComments adapts a MemoryStore to the CommentDatabase interface; the
// comment methods carry distinct names so one struct can back both databases.
type MemoryComments struct {
	*MemoryStore
}

func (m MemoryComments) Insert(ctx context.Context, comment models.Comment) error {
	return m.InsertComment(ctx, comment)
}

func (m MemoryComments) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteComment(ctx, id)
}

func (m MemoryComments) Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	return m.VoteComment(ctx, id, action)
}

func (m MemoryComments) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return m.CountCommentsSince(ctx, since)
}
