package request

// UpdateSettingsRequest updates the displayed price and prize. Empty fields
// are left untouched. Senha may carry the admin secret when it is not sent
// in the Authorization header.
type UpdateSettingsRequest struct {
	Rifa   string `json:"rifa"`
	Premio string `json:"premio"`
	Senha  string `json:"senha"`
}
