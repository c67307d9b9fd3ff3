package linking

import (
	"context"
	"fmt"
	"time"

	"github.com/megacare-dev/mega-care-api/customers"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"github.com/megacare-dev/mega-care-api/pointer"
	"github.com/megacare-dev/mega-care-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RegistryLinker looks the device up in the external patient registry
// instead of the local store. On a match the registry fields are merged
// into the user's profile directly; there is no local device discovery and
// no compensating copy in this variant.
type RegistryLinker struct {
	registry Registry
	store    store.Client
	logger   *zap.SugaredLogger
}

var _ DeviceLinker = &RegistryLinker{}

func NewRegistryLinker(registry Registry, client store.Client, logger *zap.SugaredLogger) *RegistryLinker {
	return &RegistryLinker{
		registry: registry,
		store:    client,
		logger:   logger,
	}
}

func (l *RegistryLinker) Link(ctx context.Context, userId string, request LinkRequest) (*customers.Customer, error) {
	record, err := l.registry.FindPatient(ctx, request.SerialNumber, pointer.ToString(request.DeviceNumber))
	if err == ErrRegistryNotFound {
		return nil, fmt.Errorf("%w: no patient record for serial number", internalErrs.NotFound)
	} else if err != nil {
		l.logger.Errorw("patient registry lookup failed",
			"userId", userId, "serialNumber", request.SerialNumber, "error", err)
		return nil, fmt.Errorf("%w: patient registry lookup failed", internalErrs.InternalServerError)
	}

	fields := l.profileFields(record, userId)
	profileRef := customers.ProfileRef(userId)
	if err := l.store.Set(ctx, profileRef, fields, true); err != nil {
		l.logger.Errorw("failed to merge registry record into profile",
			"userId", userId, "serialNumber", request.SerialNumber, "error", err)
		return nil, fmt.Errorf("%w: could not link device to profile", internalErrs.InternalServerError)
	}

	doc, err := l.store.Get(ctx, profileRef)
	if err != nil {
		return nil, fmt.Errorf("error reading linked profile: %w", err)
	}
	return customers.DecodeProfile(doc)
}

func (l *RegistryLinker) profileFields(record *RegistryRecord, userId string) bson.M {
	fields := bson.M{
		"lineId": userId,
	}
	if record.PatientId != "" {
		fields["patientId"] = record.PatientId
	}
	if record.FirstName != "" {
		fields["firstName"] = record.FirstName
	}
	if record.LastName != "" {
		fields["lastName"] = record.LastName
	}
	if record.DisplayName != "" {
		fields["displayName"] = record.DisplayName
	}
	if record.DealerPatientId != "" {
		fields["dealerPatientId"] = record.DealerPatientId
	}
	if record.Organisation != "" {
		fields["organisation"] = bson.M{"name": record.Organisation}
	}
	if record.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", record.DateOfBirth); err == nil {
			fields["dob"] = dob.UTC()
		} else {
			l.logger.Warnw("registry record has unparseable date of birth",
				"patientId", record.PatientId, "dateOfBirth", record.DateOfBirth)
		}
	}
	return fields
}
