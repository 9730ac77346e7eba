package medicalrecords

import (
	"context"
	"time"

	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
)

const entity = "medical_record"

type Service struct {
	repo Repository
	pets PetLookup
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		pets: pets,
		log:  log.With(map[string]any{"component": "medicalrecords"}),
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in clinic.Input) (m clinic.MedicalRecord, err error) {
	defer func() { metrics.RecordMutation(entity, "create", clinic.Outcome(err)) }()

	if err := s.validate(ctx, &m, in); err != nil {
		return clinic.MedicalRecord{}, err
	}

	now := clinic.Stamp(s.now())
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.repo.Create(ctx, m); err != nil {
		return clinic.MedicalRecord{}, s.fail("create medical record", clinic.MissingParent(err, "pet_id"))
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id string, in clinic.Input) (m clinic.MedicalRecord, err error) {
	defer func() { metrics.RecordMutation(entity, "update", clinic.Outcome(err)) }()

	m, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return clinic.MedicalRecord{}, s.fail("get medical record", err)
	}

	if err := s.validate(ctx, &m, in); err != nil {
		return clinic.MedicalRecord{}, err
	}

	m.UpdatedAt = clinic.NextUpdate(m.UpdatedAt, s.now())
	if err := s.repo.Update(ctx, m); err != nil {
		return clinic.MedicalRecord{}, s.fail("update medical record", clinic.MissingParent(err, "pet_id"))
	}
	return m, nil
}

func (s *Service) validate(ctx context.Context, m *clinic.MedicalRecord, in clinic.Input) error {
	errs := m.Apply(in)
	errs.Merge(m.Validate())

	if !errs.Has("pet_id") {
		ok, err := s.pets.Exists(ctx, m.PetID)
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
		return clinic.DeleteResult{}, s.fail("delete medical record", err)
	}
	return res, nil
}

func (s *Service) Get(ctx context.Context, id string, withRelations bool) (clinic.MedicalRecord, error) {
	var (
		m   clinic.MedicalRecord
		err error
	)
	if withRelations {
		m, err = s.repo.GetWithRelations(ctx, id)
	} else {
		m, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return clinic.MedicalRecord{}, s.fail("get medical record", err)
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, opts clinic.ListOptions) ([]clinic.MedicalRecord, error) {
	order := clinic.ParseOrder(opts.OrderBy, clinic.MedicalRecordOrderColumns, clinic.DefaultMedicalRecordOrder)
	out, err := s.repo.List(ctx, order, opts.WithRelations)
	if err != nil {
		return nil, s.fail("list medical records", err)
	}
	return out, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.fail("count medical records", err)
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
