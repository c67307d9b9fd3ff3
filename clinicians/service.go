package clinicians

import (
	"context"
	"fmt"

	"github.com/megacare-dev/mega-care-api/customers"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"go.uber.org/zap"
)

type service struct {
	repo      Repository
	customers customers.Service
	logger    *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, customersService customers.Service, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:      repo,
		customers: customersService,
		logger:    logger,
	}, nil
}

func (s *service) ListPatients(ctx context.Context, clinicianId string) ([]*customers.Customer, error) {
	clinician, err := s.authorize(ctx, clinicianId)
	if err != nil {
		return nil, err
	}

	patients := make([]*customers.Customer, 0, len(clinician.AssignedPatients))
	for _, patientId := range clinician.AssignedPatients {
		patient, err := s.customers.Get(ctx, patientId)
		if err != nil {
			// A roster entry can reference a profile that was never
			// created. Skip it rather than failing the whole listing.
			s.logger.Warnw("skipping unresolvable roster entry",
				"clinicianId", clinicianId, "patientId", patientId, "error", err)
			continue
		}
		patients = append(patients, patient)
	}
	return patients, nil
}

func (s *service) GetPatient(ctx context.Context, clinicianId string, patientId string) (*customers.Customer, error) {
	if err := s.authorizePatient(ctx, clinicianId, patientId); err != nil {
		return nil, err
	}
	return s.customers.Get(ctx, patientId)
}

func (s *service) ListPatientReports(ctx context.Context, clinicianId string, patientId string, limit int) ([]*customers.DailyReport, error) {
	if err := s.authorizePatient(ctx, clinicianId, patientId); err != nil {
		return nil, err
	}
	return s.customers.ListDailyReports(ctx, patientId, limit)
}

func (s *service) authorize(ctx context.Context, clinicianId string) (*Clinician, error) {
	clinician, err := s.repo.Get(ctx, clinicianId)
	if err == ErrNotFound {
		return nil, fmt.Errorf("%w: the caller is not a clinician", internalErrs.Forbidden)
	} else if err != nil {
		return nil, err
	}
	return clinician, nil
}

// authorizePatient fails with Forbidden for any patient outside the roster,
// including patients that do not exist, so existence is never leaked.
func (s *service) authorizePatient(ctx context.Context, clinicianId string, patientId string) error {
	clinician, err := s.authorize(ctx, clinicianId)
	if err != nil {
		return err
	}
	if !clinician.IsAssigned(patientId) {
		return fmt.Errorf("%w: patient is not assigned to this clinician", internalErrs.Forbidden)
	}
	return nil
}
