package databases

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/festivalops/report-api/models"
)

// StorageMode names the backend the process is currently writing to.
type StorageMode int32

const (
	// RemotePreferred routes operations to Mongo first.
	RemotePreferred StorageMode = iota
	// MemoryOnly routes every operation to the in-process store.
	MemoryOnly
)

func (m StorageMode) String() string {
	if m == RemotePreferred {
		return "remote"
	}
	return "memory"
}

// remoteTimeout bounds every call against the remote backend.
const remoteTimeout = 10 * time.Second

// StorageState is the one-way {RemotePreferred -> MemoryOnly} machine shared
// by the report and comment failover databases. Demotion is permanent for the
// process lifetime: a remote outage downgrades durability until restart, and
// writes taken during the outage are never reconciled back. That mirrors the
// deployment this service replaces and keeps the adapter predictable.
type StorageState struct {
	mode int32
}

// NewStorageState starts in the given mode; use MemoryOnly when no remote
// backend is configured.
func NewStorageState(mode StorageMode) *StorageState {
	return &StorageState{mode: int32(mode)}
}

// Mode returns the current storage mode.
func (s *StorageState) Mode() StorageMode {
	return StorageMode(atomic.LoadInt32(&s.mode))
}

// Demote switches to MemoryOnly. Logs once; concurrent demotions collapse.
func (s *StorageState) Demote(err error) {
	if atomic.CompareAndSwapInt32(&s.mode, int32(RemotePreferred), int32(MemoryOnly)) {
		zap.S().Warnw("remote storage failed, demoting to in-memory store for the rest of the process lifetime",
			"error", err,
		)
	}
}

// failoverReportDatabase fronts a remote ReportDatabase with a memory
// fallback. Domain results (ErrNotFound) pass through untouched; any other
// remote error demotes the state and replays the operation against memory.
type failoverReportDatabase struct {
	remote ReportDatabase
	memory ReportDatabase
	state  *StorageState
}

// NewFailoverReportDatabase wires the remote report database to its memory
// fallback under the shared storage state.
func NewFailoverReportDatabase(remote ReportDatabase, memory *MemoryStore, state *StorageState) ReportDatabase {
	return &failoverReportDatabase{remote: remote, memory: memory, state: state}
}

func (f *failoverReportDatabase) useRemote() bool {
	return f.remote != nil && f.state.Mode() == RemotePreferred
}

func (f *failoverReportDatabase) Insert(ctx context.Context, report models.Report) error {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		err := f.remote.Insert(rctx, report)
		cancel()
		if err == nil {
			return nil
		}
		f.state.Demote(err)
	}
	return f.memory.Insert(ctx, report)
}

func (f *failoverReportDatabase) FindByID(ctx context.Context, id string) (*models.Report, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		report, err := f.remote.FindByID(rctx, id)
		cancel()
		if err == nil || errors.Is(err, ErrNotFound) {
			return report, err
		}
		f.state.Demote(err)
	}
	return f.memory.FindByID(ctx, id)
}

func (f *failoverReportDatabase) Exists(ctx context.Context, id string) (bool, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		ok, err := f.remote.Exists(rctx, id)
		cancel()
		if err == nil {
			return ok, nil
		}
		f.state.Demote(err)
	}
	return f.memory.Exists(ctx, id)
}

func (f *failoverReportDatabase) List(ctx context.Context, page, pageSize int) ([]models.Report, int64, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		reports, total, err := f.remote.List(rctx, page, pageSize)
		cancel()
		if err == nil {
			return reports, total, nil
		}
		f.state.Demote(err)
	}
	return f.memory.List(ctx, page, pageSize)
}

func (f *failoverReportDatabase) Delete(ctx context.Context, id string) (bool, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		ok, err := f.remote.Delete(rctx, id)
		cancel()
		if err == nil {
			return ok, nil
		}
		f.state.Demote(err)
	}
	return f.memory.Delete(ctx, id)
}

func (f *failoverReportDatabase) Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		counts, err := f.remote.Vote(rctx, id, action)
		cancel()
		if err == nil || errors.Is(err, ErrNotFound) {
			return counts, err
		}
		f.state.Demote(err)
	}
	return f.memory.Vote(ctx, id, action)
}

func (f *failoverReportDatabase) Support(ctx context.Context, id string, support bool) (int64, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		count, err := f.remote.Support(rctx, id, support)
		cancel()
		if err == nil || errors.Is(err, ErrNotFound) {
			return count, err
		}
		f.state.Demote(err)
	}
	return f.memory.Support(ctx, id, support)
}

func (f *failoverReportDatabase) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		count, err := f.remote.CountSince(rctx, since)
		cancel()
		if err == nil {
			return count, nil
		}
		f.state.Demote(err)
	}
	return f.memory.CountSince(ctx, since)
}

// failoverCommentDatabase mirrors failoverReportDatabase for comments and
// shares the same StorageState, so a demotion on either side moves both.
type failoverCommentDatabase struct {
	remote CommentDatabase
	memory CommentDatabase
	state  *StorageState
}

// NewFailoverCommentDatabase wires the remote comment database to its memory
// fallback under the shared storage state.
func NewFailoverCommentDatabase(remote CommentDatabase, memory *MemoryStore, state *StorageState) CommentDatabase {
	return &failoverCommentDatabase{remote: remote, memory: MemoryComments{memory}, state: state}
}

func (f *failoverCommentDatabase) useRemote() bool {
	return f.remote != nil && f.state.Mode() == RemotePreferred
}

func (f *failoverCommentDatabase) Insert(ctx context.Context, comment models.Comment) error {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		err := f.remote.Insert(rctx, comment)
		cancel()
		if err == nil {
			return nil
		}
		f.state.Demote(err)
	}
	return f.memory.Insert(ctx, comment)
}

func (f *failoverCommentDatabase) FindByReportID(ctx context.Context, reportID string) ([]models.Comment, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		comments, err := f.remote.FindByReportID(rctx, reportID)
		cancel()
		if err == nil {
			return comments, nil
		}
		f.state.Demote(err)
	}
	return f.memory.FindByReportID(ctx, reportID)
}

func (f *failoverCommentDatabase) Delete(ctx context.Context, id string) (bool, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		ok, err := f.remote.Delete(rctx, id)
		cancel()
		if err == nil {
			return ok, nil
		}
		f.state.Demote(err)
	}
	return f.memory.Delete(ctx, id)
}

func (f *failoverCommentDatabase) Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		counts, err := f.remote.Vote(rctx, id, action)
		cancel()
		if err == nil || errors.Is(err, ErrNotFound) {
			return counts, err
		}
		f.state.Demote(err)
	}
	return f.memory.Vote(ctx, id, action)
}

func (f *failoverCommentDatabase) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if f.useRemote() {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		count, err := f.remote.CountSince(rctx, since)
		cancel()
		if err == nil {
			return count, nil
		}
		f.state.Demote(err)
	}
	return f.memory.CountSince(ctx, since)
}
