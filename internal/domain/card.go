package domain

import "fmt"

// Suit identifies one of the four French suits.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Suits lists every suit in deck-construction order.
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Rank identifies a card rank. Ace is high.
type Rank string

const (
	RankAce   Rank = "A"
	RankKing  Rank = "K"
	RankQueen Rank = "Q"
	RankJack  Rank = "J"
	RankTen   Rank = "10"
	RankNine  Rank = "9"
	RankEight Rank = "8"
	RankSeven Rank = "7"
	RankSix   Rank = "6"
	RankFive  Rank = "5"
	RankFour  Rank = "4"
	RankThree Rank = "3"
	RankTwo   Rank = "2"
)

// Ranks lists every rank from high to low.
var Ranks = []Rank{
	RankAce, RankKing, RankQueen, RankJack, RankTen, RankNine, RankEight,
	RankSeven, RankSix, RankFive, RankFour, RankThree, RankTwo,
}

// Card is a single playing card. Immutable once created; ID is unique
// within the pile of decks it was constructed with.
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// Label renders the card for history lines and banners, e.g. "Q of spades".
func (c Card) Label() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// RankValue returns the comparable strength of a rank, ace high (14 down to 2).
func RankValue(r Rank) int {
	for i, rank := range Ranks {
		if rank == r {
			return 14 - i
		}
	}
	return 0
}

// IsValidSuit reports whether s names one of the four suits.
func IsValidSuit(s Suit) bool {
	for _, suit := range Suits {
		if suit == s {
			return true
		}
	}
	return false
}
