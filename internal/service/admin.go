package service

// AdminService guards administrative operations with a single shared secret.
type AdminService struct {
	senha string
}

func NewAdminService(senha string) *AdminService {
	return &AdminService{
		senha: senha,
	}
}

// IsAdmin reports whether the supplied secret matches the configured one.
// An unconfigured secret never matches.
func (s *AdminService) IsAdmin(senha string) bool {
	return s.senha != "" && senha == s.senha
}
