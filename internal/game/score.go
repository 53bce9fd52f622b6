// internal/game/score.go
//
// Score calculation for a completed (or in-progress) game.

package game

const (
	baseScorePerPair = 1000
	timeBonusMax     = 3000
	timeBonusDecay   = 10 // points lost per elapsed second; bonus is zero at 300s
	movePenalty      = 50
	minScore         = 100
)

// Score is a pure function of the three stats the engine tracks.
//
//   - base:    pairCount * 1000
//   - bonus:   3000 - elapsedSeconds*10, floored at 0
//   - penalty: 50 per move beyond the theoretical minimum (one move per pair)
//
// The result is floored at 100 so every completed game scores positively.
func Score(pairCount, elapsedSeconds, moves int) int {
	base := pairCount * baseScorePerPair

	timeBonus := timeBonusMax - elapsedSeconds*timeBonusDecay
	if timeBonus < 0 {
		timeBonus = 0
	}

	extraMoves := moves - pairCount
	if extraMoves < 0 {
		extraMoves = 0
	}

	total := base + timeBonus - extraMoves*movePenalty
	if total < minScore {
		return minScore
	}
	return total
}
