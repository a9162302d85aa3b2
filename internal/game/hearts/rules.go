package hearts

import (
	"github.com/Fantomex10/foxysgamehub-sub000/internal/domain"
)

const (
	// Seats is the fixed player count for Hearts.
	Seats = 4
	// HandSize is the number of cards dealt to each player.
	HandSize = 13
	// RoundPoints is the penalty total in every round: thirteen hearts
	// plus the queen of spades.
	RoundPoints = 26
	// GameOverScore ends the game once any cumulative score reaches it.
	GameOverScore = 100
)

// isTwoOfClubs reports whether the card opens the round.
func isTwoOfClubs(c domain.Card) bool {
	return c.Suit == domain.SuitClubs && c.Rank == domain.RankTwo
}

// isQueenOfSpades reports whether the card carries the 13-point penalty.
func isQueenOfSpades(c domain.Card) bool {
	return c.Suit == domain.SuitSpades && c.Rank == domain.RankQueen
}

// CardPoints returns the penalty value a captured card adds to a round score.
func CardPoints(c domain.Card) int {
	if c.Suit == domain.SuitHearts {
		return 1
	}
	if isQueenOfSpades(c) {
		return 13
	}
	return 0
}

// LegalMoves computes every card the player may currently play:
//   - the very first trick must be led with the two of clubs when held
//   - hearts may not be led until broken, unless only hearts remain
//   - followers must follow the lead suit if able
//   - in the first trick, forced discards may not shed a heart or the
//     queen of spades unless nothing else is available
func LegalMoves(state domain.RoomState, playerID string) []domain.Card {
	hand := state.Hands[playerID]
	firstTrick := state.TricksPlayed == 0

	if len(state.Trick) == 0 {
		return legalLeads(hand, firstTrick, state.HeartsBroken)
	}

	leadSuit := state.Trick[0].Card.Suit
	if follow := filterSuit(hand, leadSuit); len(follow) > 0 {
		return follow
	}
	if firstTrick {
		if safe := filterPointless(hand); len(safe) > 0 {
			return safe
		}
	}
	return append([]domain.Card(nil), hand...)
}

func legalLeads(hand []domain.Card, firstTrick, heartsBroken bool) []domain.Card {
	if firstTrick {
		for _, c := range hand {
			if isTwoOfClubs(c) {
				return []domain.Card{c}
			}
		}
	}
	if !heartsBroken {
		var out []domain.Card
		for _, c := range hand {
			if c.Suit != domain.SuitHearts {
				out = append(out, c)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return append([]domain.Card(nil), hand...)
}

func filterSuit(hand []domain.Card, suit domain.Suit) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func filterPointless(hand []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if CardPoints(c) == 0 {
			out = append(out, c)
		}
	}
	return out
}

// TrickWinner returns the trick index of the highest card in the led suit.
// Off-suit cards cannot win.
func TrickWinner(trick []domain.TrickPlay) int {
	lead := trick[0].Card.Suit
	winner := 0
	for i, play := range trick[1:] {
		c := play.Card
		if c.Suit == lead && domain.RankValue(c.Rank) > domain.RankValue(trick[winner].Card.Rank) {
			winner = i + 1
		}
	}
	return winner
}

// TrickPoints totals the penalty points carried by a completed trick.
func TrickPoints(trick []domain.TrickPlay) int {
	total := 0
	for _, play := range trick {
		total += CardPoints(play.Card)
	}
	return total
}
