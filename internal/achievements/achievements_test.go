package achievements

import (
	"testing"

	"github.com/lucbrn/memory/go-server/internal/scores"
)

func ids(list []Achievement) map[string]bool {
	m := map[string]bool{}
	for _, a := range list {
		m[a.ID] = true
	}
	return m
}

func TestUnlocked(t *testing.T) {
	tests := []struct {
		name    string
		stats   scores.Stats
		want    []string
		notWant []string
	}{
		{
			name:    "no games yet",
			stats:   scores.Stats{Ranking: 1},
			want:    nil,
			notWant: []string{"first_game", "speed_demon", "top_ten"},
		},
		{
			name:    "single slow game",
			stats:   scores.Stats{TotalGames: 1, BestScore: 900, BestTime: 400, Ranking: 1},
			want:    []string{"first_game", "top_ten"},
			notWant: []string{"ten_games", "speed_demon", "high_scorer"},
		},
		{
			name:    "fast high scorer",
			stats:   scores.Stats{TotalGames: 12, BestScore: 8600, BestTime: 45, Ranking: 3},
			want:    []string{"first_game", "ten_games", "speed_demon", "high_scorer", "top_ten"},
			notWant: []string{"hundred_games", "perfectionist", "expert_level"},
		},
		{
			name:  "veteran expert",
			stats: scores.Stats{TotalGames: 150, BestScore: 15000, BestTime: 30, BestMoves: 12, MaxPairs: 12, Perfect: true, Ranking: 1},
			want: []string{"first_game", "ten_games", "hundred_games", "speed_demon",
				"perfectionist", "high_scorer", "top_ten", "expert_level"},
		},
		{
			name:    "good player outside top ten",
			stats:   scores.Stats{TotalGames: 5, BestScore: 6000, BestTime: 120, Ranking: 40},
			want:    []string{"first_game", "high_scorer"},
			notWant: []string{"top_ten"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Unlocked(tt.stats))
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("expected %q unlocked; got %v", id, got)
				}
			}
			for _, id := range tt.notWant {
				if got[id] {
					t.Errorf("expected %q locked; got %v", id, got)
				}
			}
		})
	}
}

func TestAllCoversCatalog(t *testing.T) {
	all := All()
	if len(all) != len(catalog) {
		t.Fatalf("All returned %d entries, want %d", len(all), len(catalog))
	}
	seen := map[string]bool{}
	for _, a := range all {
		if a.ID == "" || a.Title == "" {
			t.Errorf("incomplete achievement %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
}
