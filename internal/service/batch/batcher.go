// Package batch collapses near-simultaneous review candidates into
// single notification groups.
package batch

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

// DefaultMergeWindow is the maximum gap between consecutive candidates
// that still lands them in the same notification.
const DefaultMergeWindow = 5 * time.Minute

// Merge sorts candidates by send time and chain-merges consecutive
// ones: a candidate joins the forming group when its send time is
// within mergeWindow of the previous member, and the comparison point
// then slides forward to it. A dense run spaced just under the window
// therefore merges end to end even when first and last are farther
// apart than the window itself.
//
// Each returned group maps to exactly one dispatch job, keyed by the
// first member's send time.
func Merge(candidates []domain.ReviewCandidate, mergeWindow time.Duration) []*domain.NotificationGroup {
	if len(candidates) == 0 {
		return nil
	}
	if mergeWindow <= 0 {
		mergeWindow = DefaultMergeWindow
	}

	sorted := make([]domain.ReviewCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SendAt.Before(sorted[j].SendAt)
	})

	groups := make([]*domain.NotificationGroup, 0, len(sorted))
	current := domain.NewNotificationGroup(sorted[0])
	chainAnchor := sorted[0].SendAt

	for _, c := range sorted[1:] {
		if c.SendAt.Sub(chainAnchor) <= mergeWindow {
			current.Add(c)
		} else {
			groups = append(groups, current)
			current = domain.NewNotificationGroup(c)
		}
		chainAnchor = c.SendAt
	}

	return append(groups, current)
}
