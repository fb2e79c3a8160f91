package service

import (
	"github.com/sharemycard/cardsync/models"
)

// Disposition is the merge resolver's verdict for one local/remote
// record pair.
type Disposition int

const (
	// NoChange — both sides carry the same revision; nothing to do.
	NoChange Disposition = iota

	// KeepLocal — the local revision is newer; it stays and reaches the
	// server on the next push.
	KeepLocal

	// TakeRemote — the remote revision is newer; it overwrites the
	// local record in place, keeping the local identity.
	TakeRemote

	// CreateLocal — no local counterpart exists; the remote record is
	// materialized in the cache.
	CreateLocal
)

func (d Disposition) String() string {
	switch d {
	case NoChange:
		return "no change"
	case KeepLocal:
		return "keep local"
	case TakeRemote:
		return "take remote"
	case CreateLocal:
		return "create local"
	default:
		return "unknown"
	}
}

// mergeResolver decides record conflicts by last-write-wins on the
// normalized update timestamp. It is a pure decision function: applying
// the verdict is the coordinator's job.
type mergeResolver struct{}

// Resolve compares one local/remote pair. local may be nil when no
// counterpart exists. Ties resolve to [NoChange]: equal timestamps mean
// the same revision seen from both sides, and overwriting would only
// churn the cache.
func (mergeResolver) Resolve(local, remote *models.SyncMeta) Disposition {
	if local == nil {
		return CreateLocal
	}

	switch {
	case remote.UpdatedAt.After(local.UpdatedAt):
		return TakeRemote
	case local.UpdatedAt.After(remote.UpdatedAt):
		return KeepLocal
	default:
		return NoChange
	}
}
