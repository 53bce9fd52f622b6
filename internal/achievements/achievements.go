// internal/achievements/achievements.go
//
// Fixed achievement catalog, unlocked by a player's aggregated results.
// Evaluation is a pure function of scores.Stats so it can run on every
// profile request without extra storage.

package achievements

import "github.com/lucbrn/memory/go-server/internal/scores"

// Achievement is one unlockable badge shown on the player profile.
type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// condition pairs an achievement with its unlock predicate.
type condition struct {
	Achievement
	unlocked func(scores.Stats) bool
}

var catalog = []condition{
	{
		Achievement: Achievement{ID: "first_game", Icon: "🎮", Title: "Premier Pas",
			Description: "Jouer sa première partie"},
		unlocked: func(s scores.Stats) bool { return s.TotalGames >= 1 },
	},
	{
		Achievement: Achievement{ID: "ten_games", Icon: "🔥", Title: "Joueur Régulier",
			Description: "Jouer 10 parties"},
		unlocked: func(s scores.Stats) bool { return s.TotalGames >= 10 },
	},
	{
		Achievement: Achievement{ID: "hundred_games", Icon: "💯", Title: "Centenaire",
			Description: "Jouer 100 parties"},
		unlocked: func(s scores.Stats) bool { return s.TotalGames >= 100 },
	},
	{
		Achievement: Achievement{ID: "speed_demon", Icon: "⚡", Title: "Démon de Vitesse",
			Description: "Terminer une partie en moins de 60 secondes"},
		unlocked: func(s scores.Stats) bool { return s.TotalGames > 0 && s.BestTime < 60 },
	},
	{
		Achievement: Achievement{ID: "perfectionist", Icon: "🎯", Title: "Perfectionniste",
			Description: "Terminer une partie avec le minimum de coups"},
		unlocked: func(s scores.Stats) bool { return s.Perfect },
	},
	{
		Achievement: Achievement{ID: "high_scorer", Icon: "🏆", Title: "Gros Score",
			Description: "Obtenir un score de 5000 points"},
		unlocked: func(s scores.Stats) bool { return s.BestScore >= 5000 },
	},
	{
		Achievement: Achievement{ID: "top_ten", Icon: "🥇", Title: "Top 10",
			Description: "Être dans le top 10"},
		unlocked: func(s scores.Stats) bool { return s.TotalGames > 0 && s.Ranking <= 10 },
	},
	{
		Achievement: Achievement{ID: "expert_level", Icon: "🧠", Title: "Niveau Expert",
			Description: "Terminer une partie de 12 paires"},
		unlocked: func(s scores.Stats) bool { return s.MaxPairs >= 12 },
	},
}

// All returns the full catalog, locked and unlocked alike.
func All() []Achievement {
	out := make([]Achievement, len(catalog))
	for i, c := range catalog {
		out[i] = c.Achievement
	}
	return out
}

// Unlocked returns the achievements the given stats satisfy, in catalog order.
func Unlocked(st scores.Stats) []Achievement {
	out := []Achievement{}
	for _, c := range catalog {
		if c.unlocked(st) {
			out = append(out, c.Achievement)
		}
	}
	return out
}
