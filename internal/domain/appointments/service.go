package appointments

import (
	"context"
	"time"

	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
)

const entity = "appointment"

type Service struct {
	repo Repository
	pets PetLookup
	loc  *time.Location // zona en la que se interpretan date + time
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup, loc *time.Location, log logger.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		pets: pets,
		loc:  loc,
		log:  log.With(map[string]any{"component": "appointments"}),
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in clinic.Input) (a clinic.Appointment, err error) {
	defer func() { metrics.RecordMutation(entity, "create", clinic.Outcome(err)) }()

	if err := s.validate(ctx, &a, in); err != nil {
		return clinic.Appointment{}, err
	}

	now := clinic.Stamp(s.now())
	a.ID = uuid.NewString()
	a.DateTime = clinic.Stamp(a.DateTime)
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.repo.Create(ctx, a); err != nil {
		return clinic.Appointment{}, s.fail("create appointment", clinic.MissingParent(err, "pet_id"))
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in clinic.Input) (a clinic.Appointment, err error) {
	defer func() { metrics.RecordMutation(entity, "update", clinic.Outcome(err)) }()

	a, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return clinic.Appointment{}, s.fail("get appointment", err)
	}

	if err := s.validate(ctx, &a, in); err != nil {
		return clinic.Appointment{}, err
	}

	a.DateTime = clinic.Stamp(a.DateTime)
	a.UpdatedAt = clinic.NextUpdate(a.UpdatedAt, s.now())
	if err := s.repo.Update(ctx, a); err != nil {
		return clinic.Appointment{}, s.fail("update appointment", clinic.MissingParent(err, "pet_id"))
	}
	return a, nil
}

func (s *Service) validate(ctx context.Context, a *clinic.Appointment, in clinic.Input) error {
	errs := a.Apply(in, s.loc)
	errs.Merge(a.Validate())

	if !errs.Has("pet_id") {
		ok, err := s.pets.Exists(ctx, a.PetID)
		if err != nil {
			return s.fail("lookup pet", err)
		}
		if !ok {
			errs.Add("pet_id", "does not exist")
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
		return clinic.DeleteResult{}, s.fail("delete appointment", err)
	}
	return res, nil
}

func (s *Service) Get(ctx context.Context, id string, withRelations bool) (clinic.Appointment, error) {
	var (
		a   clinic.Appointment
		err error
	)
	if withRelations {
		a, err = s.repo.GetWithRelations(ctx, id)
	} else {
		a, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return clinic.Appointment{}, s.fail("get appointment", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, opts clinic.ListOptions) ([]clinic.Appointment, error) {
	order := clinic.ParseOrder(opts.OrderBy, clinic.AppointmentOrderColumns, clinic.DefaultAppointmentOrder)
	out, err := s.repo.List(ctx, order, opts.WithRelations)
	if err != nil {
		return nil, s.fail("list appointments", err)
	}
	return out, nil
}

func (s *Service) Recent(ctx context.Context, n int) ([]clinic.Appointment, error) {
	out, err := s.repo.ListRecent(ctx, n)
	if err != nil {
		return nil, s.fail("list recent appointments", err)
	}
	return out, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.fail("count appointments", err)
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
