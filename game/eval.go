package game

// MobilityWeight scales the legal-move difference in the static evaluation.
const MobilityWeight = 5

// PositionWeights is the per-cell strategic value: corners are prized, the
// cells next to them are dangerous, edges are good and the ring inside the
// edges is slightly bad. Symmetric under the board's reflections.
var PositionWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// ScoreComponents breaks a static evaluation into its terms.
type ScoreComponents struct {
	Material   int // Disc difference
	Mobility   int // Legal move difference, unweighted
	Positional int // Weighted cell ownership
}

// Total combines the components into the evaluation score.
func (sc ScoreComponents) Total() int {
	return sc.Material + MobilityWeight*sc.Mobility + sc.Positional
}

// EvaluatePosition scores the current position for perspective as
// material + 5*mobility + positional. Both mobility terms are measured on
// the position as it stands, whoever is to move.
func EvaluatePosition(gs *GameState, perspective Disc) int {
	return EvaluateDetailed(gs, perspective).Total()
}

// EvaluateDetailed returns the individual terms of EvaluatePosition.
func EvaluateDetailed(gs *GameState, perspective Disc) ScoreComponents {
	opponent := perspective.Opponent()
	return ScoreComponents{
		Material:   gs.Count(perspective) - gs.Count(opponent),
		Mobility:   len(gs.LegalMoves(perspective)) - len(gs.LegalMoves(opponent)),
		Positional: gs.calculatePositionalScore(perspective),
	}
}

func (gs *GameState) calculatePositionalScore(perspective Disc) int {
	opponent := perspective.Opponent()
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch gs.board[r][c] {
			case perspective:
				score += PositionWeights[r][c]
			case opponent:
				score -= PositionWeights[r][c]
			}
		}
	}
	return score
}
