package customers

import (
	"context"
	"fmt"

	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"go.uber.org/zap"
)

const (
	DefaultReportLimit = 30
	MaxReportLimit     = 100
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Get(ctx context.Context, userId string) (*Customer, error) {
	customer, err := s.repo.Get(ctx, userId)
	if err == ErrNotFound {
		return nil, fmt.Errorf("%w: customer profile does not exist", internalErrs.NotFound)
	}
	return customer, err
}

func (s *service) Create(ctx context.Context, customer Customer) (*Customer, error) {
	if customer.Id == "" {
		return nil, fmt.Errorf("%w: user id is missing", internalErrs.BadRequest)
	}
	if customer.DisplayName == nil || customer.FirstName == nil || customer.LastName == nil || customer.BirthDate == nil {
		return nil, fmt.Errorf("%w: displayName, firstName, lastName and dob are required", internalErrs.ConstraintViolation)
	}

	created, err := s.repo.Create(ctx, customer)
	if err == ErrDuplicate {
		return nil, fmt.Errorf("%w: a profile already exists for this user", internalErrs.Conflict)
	} else if err != nil {
		return nil, err
	}

	s.logger.Infow("created customer profile", "userId", created.Id)
	return created, nil
}

func (s *service) FindByLineId(ctx context.Context, lineId string) (*Customer, error) {
	customer, err := s.repo.FindByLineId(ctx, lineId)
	if err == ErrNotFound {
		return nil, fmt.Errorf("%w: no profile is linked to this line id", internalErrs.NotFound)
	}
	return customer, err
}

func (s *service) AddDevice(ctx context.Context, userId string, device Device) (*Device, error) {
	if device.SerialNumber == nil {
		return nil, fmt.Errorf("%w: serialNumber is required", internalErrs.ConstraintViolation)
	}
	return s.repo.AddDevice(ctx, userId, device)
}

func (s *service) ListDevices(ctx context.Context, userId string) ([]*Device, error) {
	return s.repo.ListDevices(ctx, userId)
}

func (s *service) AddMask(ctx context.Context, userId string, mask Mask) (*Mask, error) {
	if mask.MaskName == nil {
		return nil, fmt.Errorf("%w: maskName is required", internalErrs.ConstraintViolation)
	}
	return s.repo.AddMask(ctx, userId, mask)
}

func (s *service) ListMasks(ctx context.Context, userId string) ([]*Mask, error) {
	return s.repo.ListMasks(ctx, userId)
}

func (s *service) AddAirTubing(ctx context.Context, userId string, tubing AirTubing) (*AirTubing, error) {
	if tubing.TubingName == nil {
		return nil, fmt.Errorf("%w: tubingName is required", internalErrs.ConstraintViolation)
	}
	return s.repo.AddAirTubing(ctx, userId, tubing)
}

func (s *service) ListAirTubing(ctx context.Context, userId string) ([]*AirTubing, error) {
	return s.repo.ListAirTubing(ctx, userId)
}

func (s *service) UpsertDailyReport(ctx context.Context, userId string, report DailyReport) (*DailyReport, error) {
	if report.Id == "" {
		return nil, fmt.Errorf("%w: reportDate is required", internalErrs.ConstraintViolation)
	}
	return s.repo.UpsertDailyReport(ctx, userId, report)
}

func (s *service) ListDailyReports(ctx context.Context, userId string, limit int) ([]*DailyReport, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	if limit > MaxReportLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", internalErrs.BadRequest, MaxReportLimit)
	}
	return s.repo.ListDailyReports(ctx, userId, limit)
}

func (s *service) GetDailyReport(ctx context.Context, userId string, date string) (*DailyReport, error) {
	report, err := s.repo.GetDailyReport(ctx, userId, date)
	if err == ErrReportNotFound {
		return nil, fmt.Errorf("%w: no report for date %s", internalErrs.NotFound, date)
	}
	return report, err
}

func (s *service) LatestDailyReport(ctx context.Context, userId string) (*DailyReport, error) {
	report, err := s.repo.LatestDailyReport(ctx, userId)
	if err == ErrReportNotFound {
		return nil, fmt.Errorf("%w: no reports for this user", internalErrs.NotFound)
	}
	return report, err
}
