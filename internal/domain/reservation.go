package domain

// Reservation is a claimed raffle number. Numero and Nome are fixed at
// creation time; only Pago is ever mutated.
type Reservation struct {
	Numero string `json:"numero"`
	Nome   string `json:"nome"`
	Pago   bool   `json:"pago"`
}
