package batch

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

func candidateAt(sendAt time.Time, eventID string) domain.ReviewCandidate {
	return domain.ReviewCandidate{
		UserID:  "user-1",
		EventID: eventID,
		RuleID:  "rule-1",
		Title:   "calculus",
		DueAt:   sendAt,
		SendAt:  sendAt,
	}
}

func TestMerge(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		offsets     []time.Duration // minutes offsets from base, unsorted allowed
		wantGroups  []int           // member count per group, in anchor order
		wantAnchors []time.Duration // anchor offset per group
	}{
		{
			name:       "empty input yields no groups",
			offsets:    nil,
			wantGroups: nil,
		},
		{
			name:        "single candidate single group",
			offsets:     []time.Duration{0},
			wantGroups:  []int{1},
			wantAnchors: []time.Duration{0},
		},
		{
			name:        "three within chained window then one apart",
			offsets:     []time.Duration{0, 3 * time.Minute, 7 * time.Minute, 20 * time.Minute},
			wantGroups:  []int{3, 1},
			wantAnchors: []time.Duration{0, 20 * time.Minute},
		},
		{
			name: "chain exceeds window from first element but still merges",
			// Each step is 4 minutes, total spread 16 minutes.
			offsets:     []time.Duration{0, 4 * time.Minute, 8 * time.Minute, 12 * time.Minute, 16 * time.Minute},
			wantGroups:  []int{5},
			wantAnchors: []time.Duration{0},
		},
		{
			name:        "gap just over the window splits",
			offsets:     []time.Duration{0, 5*time.Minute + time.Second},
			wantGroups:  []int{1, 1},
			wantAnchors: []time.Duration{0, 5*time.Minute + time.Second},
		},
		{
			name:        "gap exactly at the window merges",
			offsets:     []time.Duration{0, 5 * time.Minute},
			wantGroups:  []int{2},
			wantAnchors: []time.Duration{0},
		},
		{
			name:        "unsorted input is sorted before merging",
			offsets:     []time.Duration{20 * time.Minute, 3 * time.Minute, 0, 7 * time.Minute},
			wantGroups:  []int{3, 1},
			wantAnchors: []time.Duration{0, 20 * time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := make([]domain.ReviewCandidate, 0, len(tt.offsets))
			for i, off := range tt.offsets {
				candidates = append(candidates, candidateAt(base.Add(off), "event-"+string(rune('a'+i))))
			}

			groups := Merge(candidates, DefaultMergeWindow)
			if len(groups) != len(tt.wantGroups) {
				t.Fatalf("expected %d groups, got %d", len(tt.wantGroups), len(groups))
			}

			for i, g := range groups {
				if len(g.Members) != tt.wantGroups[i] {
					t.Errorf("group %d: expected %d members, got %d", i, tt.wantGroups[i], len(g.Members))
				}
				wantAnchor := base.Add(tt.wantAnchors[i])
				if !g.AnchorSendAt.Equal(wantAnchor) {
					t.Errorf("group %d: expected anchor %v, got %v", i, wantAnchor, g.AnchorSendAt)
				}
				if !g.Members[0].SendAt.Equal(g.AnchorSendAt) {
					t.Errorf("group %d: anchor must equal first member send time", i)
				}
			}
		})
	}
}

func TestMergeChainInvariant(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	offsets := []time.Duration{
		0, 2 * time.Minute, 4 * time.Minute, 11 * time.Minute,
		13 * time.Minute, 30 * time.Minute,
	}

	candidates := make([]domain.ReviewCandidate, 0, len(offsets))
	for i, off := range offsets {
		candidates = append(candidates, candidateAt(base.Add(off), "event-"+string(rune('a'+i))))
	}

	groups := Merge(candidates, DefaultMergeWindow)

	seen := make(map[string]bool)
	for _, g := range groups {
		for i, m := range g.Members {
			if seen[m.EventID] {
				t.Fatalf("candidate %s appears in more than one group", m.EventID)
			}
			seen[m.EventID] = true

			if i == 0 {
				continue
			}
			gap := m.SendAt.Sub(g.Members[i-1].SendAt)
			if gap > DefaultMergeWindow {
				t.Errorf("consecutive members %d and %d are %v apart", i-1, i, gap)
			}
		}
	}
	if len(seen) != len(offsets) {
		t.Errorf("expected %d distinct candidates across groups, got %d", len(offsets), len(seen))
	}
}

func TestMergeGroupOrderMatchesAccumulation(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	candidates := []domain.ReviewCandidate{
		candidateAt(base.Add(3*time.Minute), "event-b"),
		candidateAt(base, "event-a"),
		candidateAt(base.Add(4*time.Minute), "event-c"),
	}

	groups := Merge(candidates, DefaultMergeWindow)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	want := []string{"event-a", "event-b", "event-c"}
	for i, m := range groups[0].Members {
		if m.EventID != want[i] {
			t.Errorf("member %d: expected %s, got %s", i, want[i], m.EventID)
		}
	}
}
