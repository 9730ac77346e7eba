package clients

import (
	"context"
	"time"

	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
)

const entity = "client"

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "clients"}),
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in clinic.Input) (c clinic.Client, err error) {
	defer func() { metrics.RecordMutation(entity, "create", clinic.Outcome(err)) }()

	errs := c.Apply(in)
	if err := clinic.Check(errs, c); err != nil {
		return clinic.Client{}, err
	}

	now := clinic.Stamp(s.now())
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		return clinic.Client{}, s.fail("create client", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in clinic.Input) (c clinic.Client, err error) {
	defer func() { metrics.RecordMutation(entity, "update", clinic.Outcome(err)) }()

	c, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return clinic.Client{}, s.fail("get client", err)
	}

	errs := c.Apply(in)
	if err := clinic.Check(errs, c); err != nil {
		return clinic.Client{}, err
	}

	c.UpdatedAt = clinic.NextUpdate(c.UpdatedAt, s.now())
	if err := s.repo.Update(ctx, c); err != nil {
		return clinic.Client{}, s.fail("update client", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) (res clinic.DeleteResult, err error) {
	defer func() { metrics.RecordMutation(entity, "delete", clinic.Outcome(err)) }()

	res, err = s.repo.Delete(ctx, id)
	if err != nil {
		return clinic.DeleteResult{}, s.fail("delete client", err)
	}

	metrics.RecordCascade(map[string]int{
		"pet":            res.Pets,
		"appointment":    res.Appointments,
		"medical_record": res.MedicalRecords,
	})
	s.log.Info("client deleted", mergeFields(map[string]any{"client_id": id}, res.Fields()))
	return res, nil
}

func (s *Service) Get(ctx context.Context, id string, withRelations bool) (clinic.Client, error) {
	var (
		c   clinic.Client
		err error
	)
	if withRelations {
		c, err = s.repo.GetWithRelations(ctx, id)
	} else {
		c, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return clinic.Client{}, s.fail("get client", err)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, opts clinic.ListOptions) ([]clinic.Client, error) {
	order := clinic.ParseOrder(opts.OrderBy, clinic.ClientOrderColumns, clinic.DefaultClientOrder)
	out, err := s.repo.List(ctx, order, opts.WithRelations)
	if err != nil {
		return nil, s.fail("list clients", err)
	}
	return out, nil
}

// Appointments devuelve las citas de todas las mascotas del cliente.
func (s *Service) Appointments(ctx context.Context, clientID string) ([]clinic.Appointment, error) {
	out, err := s.repo.ListAppointments(ctx, clientID)
	if err != nil {
		return nil, s.fail("list client appointments", err)
	}
	return out, nil
}

func (s *Service) MedicalRecords(ctx context.Context, clientID string) ([]clinic.MedicalRecord, error) {
	out, err := s.repo.ListMedicalRecords(ctx, clientID)
	if err != nil {
		return nil, s.fail("list client medical records", err)
	}
	return out, nil
}

// Exists lo usa pets para validar client_id.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, s.fail("lookup client", err)
	}
	return ok, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.fail("count clients", err)
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

func mergeFields(a, b map[string]any) map[string]any {
	for k, v := range b {
		a[k] = v
	}
	return a
}
