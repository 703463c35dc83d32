package rules

import "github.com/talgya/settlers/internal/entropy"

// DiceRoll is the result of rolling two six-sided dice.
type DiceRoll struct {
	Die1  int `json:"die1"`
	Die2  int `json:"die2"`
	Total int `json:"total"`
}

// RollDice rolls two dice from the given source. A nil source draws
// from crypto/rand.
func RollDice(src entropy.Source) DiceRoll {
	if src == nil {
		src = entropy.Crypto{}
	}
	d1 := src.Intn(6) + 1
	d2 := src.Intn(6) + 1
	return DiceRoll{Die1: d1, Die2: d2, Total: d1 + d2}
}
