package request

type LoginRequest struct {
	Senha string `json:"senha"`
}
