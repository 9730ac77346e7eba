package pets

import "context"

// ClientLookup valida client_id sin importar el módulo clients (evita ciclos).
type ClientLookup interface {
	Exists(ctx context.Context, clientID string) (bool, error)
}

// Exists lo usan appointments y medicalrecords para validar pet_id.
func (s *Service) Exists(ctx context.Context, petID string) (bool, error) {
	ok, err := s.repo.Exists(ctx, petID)
	if err != nil {
		return false, s.fail("lookup pet", err)
	}
	return ok, nil
}
