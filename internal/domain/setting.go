package domain

// Display settings shown by the raffle page.
const (
	SettingRifa   = "rifa"   // ticket price
	SettingPremio = "premio" // prize description
)

// Setting is a named display setting, stored as a tipo/valor pair.
type Setting struct {
	Tipo  string `json:"tipo"`
	Valor string `json:"valor"`
}
