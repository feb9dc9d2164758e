package poker

import "fmt"

type InvalidHandSizeError struct {
	Size int
}

func (e *InvalidHandSizeError) Error() string {
	return fmt.Sprintf("Hand must contain 1 to %d cards, got %d", MaxHandSize, e.Size)
}

type InsufficientDeckError struct {
	Requested int
	Available int
}

func (e *InsufficientDeckError) Error() string {
	return fmt.Sprintf("Cannot deal %d cards from a deck of %d", e.Requested, e.Available)
}

type CardNotInHandError struct {
	CardID string
}

func (e *CardNotInHandError) Error() string {
	return fmt.Sprintf("Card %s is not in the hand", e.CardID)
}
