package pets

import (
	"context"
	"time"

	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
)

const entity = "pet"

type Service struct {
	repo    Repository
	clients ClientLookup
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, clients ClientLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		clients: clients,
		log:     log.With(map[string]any{"component": "pets"}),
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in clinic.Input) (p clinic.Pet, err error) {
	defer func() { metrics.RecordMutation(entity, "create", clinic.Outcome(err)) }()

	if err := s.validate(ctx, &p, in); err != nil {
		return clinic.Pet{}, err
	}

	now := clinic.Stamp(s.now())
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return clinic.Pet{}, s.fail("create pet", clinic.MissingParent(err, "client_id"))
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, in clinic.Input) (p clinic.Pet, err error) {
	defer func() { metrics.RecordMutation(entity, "update", clinic.Outcome(err)) }()

	p, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return clinic.Pet{}, s.fail("get pet", err)
	}

	if err := s.validate(ctx, &p, in); err != nil {
		return clinic.Pet{}, err
	}

	p.UpdatedAt = clinic.NextUpdate(p.UpdatedAt, s.now())
	if err := s.repo.Update(ctx, p); err != nil {
		return clinic.Pet{}, s.fail("update pet", clinic.MissingParent(err, "client_id"))
	}
	return p, nil
}

// validate aplica el input, corre las reglas y verifica que el cliente exista.
// Todas las violaciones se reportan juntas.
func (s *Service) validate(ctx context.Context, p *clinic.Pet, in clinic.Input) error {
	errs := p.Apply(in)
	errs.Merge(p.Validate())

	if !errs.Has("client_id") {
		ok, err := s.clients.Exists(ctx, p.ClientID)
		if err != nil {
			return s.fail("lookup client", err)
		}
		if !ok {
			errs.Add("client_id", "does not exist")
		}
	}

	if !errs.Empty() {
		return &clinic.ValidationError{Fields: errs}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) (res clinic.DeleteResult, err error) {
	defer func() { metrics.RecordMutation(entity, "delete", clinic.Outcome(err)) }()

	res, err = s.repo.Delete(ctx, id)
	if err != nil {
		return clinic.DeleteResult{}, s.fail("delete pet", err)
	}

	metrics.RecordCascade(map[string]int{
		"appointment":    res.Appointments,
		"medical_record": res.MedicalRecords,
	})

	fields := res.Fields()
	fields["pet_id"] = id
	s.log.Info("pet deleted", fields)
	return res, nil
}

func (s *Service) Get(ctx context.Context, id string, withRelations bool) (clinic.Pet, error) {
	var (
		p   clinic.Pet
		err error
	)
	if withRelations {
		p, err = s.repo.GetWithRelations(ctx, id)
	} else {
		p, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return clinic.Pet{}, s.fail("get pet", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, opts clinic.ListOptions) ([]clinic.Pet, error) {
	order := clinic.ParseOrder(opts.OrderBy, clinic.PetOrderColumns, clinic.DefaultPetOrder)
	out, err := s.repo.List(ctx, order, opts.WithRelations)
	if err != nil {
		return nil, s.fail("list pets", err)
	}
	return out, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.fail("count pets", err)
	}
	return n, nil
}

func (s *Service) fail(op string, err error) error {
	err = clinic.WrapStorage(op, err)
	if clinic.Outcome(err) == "error" {
		s.log.Error("storage failure", map[string]any{"op": op, "error": err})
	}
	return err
}
