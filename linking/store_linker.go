package linking

import (
	"context"
	"fmt"
	"time"

	"github.com/megacare-dev/mega-care-api/customers"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"github.com/megacare-dev/mega-care-api/store"
	"github.com/mohae/deepcopy"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// identityFields are the profile fields that belong to the authentication
// identity rather than the clinical record. They survive the merge
// unconditionally, because the pre-provisioned record predates
// authentication and knows nothing about it.
var identityFields = []string{"lineProfile", "lineId"}

// StoreLinker reconciles a pre-provisioned patient record with the
// authenticated user's profile by discovering an unlinked device in the
// document store.
type StoreLinker struct {
	store  store.Client
	logger *zap.SugaredLogger
}

var _ DeviceLinker = &StoreLinker{}

func NewStoreLinker(client store.Client, logger *zap.SugaredLogger) *StoreLinker {
	return &StoreLinker{
		store:  client,
		logger: logger,
	}
}

func (l *StoreLinker) Link(ctx context.Context, userId string, request LinkRequest) (*customers.Customer, error) {
	device, err := l.discoverDevice(ctx, request.SerialNumber)
	if err != nil {
		return nil, err
	}

	if owner, ok := device.Fields["customerId"].(string); ok && owner != "" && owner != userId {
		return nil, fmt.Errorf("%w: device is already linked to another profile", internalErrs.Conflict)
	}

	record, err := l.resolveRecord(ctx, device)
	if err != nil {
		return nil, err
	}
	if record.kind == kindProfile && record.ref.ID != userId {
		return nil, fmt.Errorf("%w: device is already linked to another profile", internalErrs.Conflict)
	}

	snapshot := deepcopy.Copy(record.fields).(bson.M)

	var compensations []compensation

	patientId, _ := device.Fields["patientId"].(string)
	if patientId != "" {
		if err := l.copyToLookup(ctx, patientId, userId, snapshot); err != nil {
			compensations = append(compensations, compensation{step: "patient lookup copy", err: err})
		}
	}

	preserved, err := l.preservedIdentityFields(ctx, userId)
	if err != nil {
		return nil, err
	}

	// Full replacement on purpose: a merge would resurrect fields left on
	// the profile by an earlier partial attempt.
	final := snapshot
	for k, v := range preserved {
		final[k] = v
	}
	if patientId != "" {
		final["patientId"] = patientId
	} else {
		final["patientId"] = nil
	}

	profileRef := customers.ProfileRef(userId)
	if err := l.store.Set(ctx, profileRef, final, false); err != nil {
		l.logger.Errorw("failed to commit linked profile",
			"userId", userId, "serialNumber", request.SerialNumber, "error", err)
		return nil, fmt.Errorf("%w: could not link device to profile", internalErrs.InternalServerError)
	}

	// The link itself has succeeded. Everything below only prevents the
	// device from being claimed twice and keeps the owner's device list
	// complete, so failures are swallowed.
	if err := l.consumeDevice(ctx, device.Ref, userId); err != nil {
		compensations = append(compensations, compensation{step: "device status update", err: err})
	}
	if err := l.recordDevice(ctx, profileRef, device, request); err != nil {
		compensations = append(compensations, compensation{step: "owner device record", err: err})
	}
	logCompensations(l.logger, userId, request.SerialNumber, compensations)

	doc, err := l.store.Get(ctx, profileRef)
	if err != nil {
		return nil, fmt.Errorf("error reading linked profile: %w", err)
	}
	return customers.DecodeProfile(doc)
}

// discoverDevice finds the first unlinked device with the serial number.
// Two devices sharing a serial number is not defensively handled: first
// match wins. Nothing guards two concurrent link calls from both observing
// status == "unlink"; the last commit wins.
func (l *StoreLinker) discoverDevice(ctx context.Context, serialNumber string) (*store.Document, error) {
	filters := []store.Filter{
		{Field: "serialNumber", Value: serialNumber},
		{Field: "status", Value: customers.DeviceStatusUnlink},
	}
	devices, err := l.store.QueryGroup(ctx, store.DevicesCollection, filters, 1)
	if err != nil {
		return nil, fmt.Errorf("error searching for device: %w", err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no patient record for serial number", internalErrs.NotFound)
	}
	return &devices[0], nil
}

// resolveRecord walks from the device to the record that owns it. Devices
// are parented by either a customer profile or a pre-provisioned patient
// record; a device without a parent falls back to the patientId field
// resolved in the patient lookup collection.
func (l *StoreLinker) resolveRecord(ctx context.Context, device *store.Document) (*linkedRecord, error) {
	ref := device.Ref.Parent
	if ref == nil {
		patientId, _ := device.Fields["patientId"].(string)
		if patientId == "" {
			return nil, fmt.Errorf("%w: device not linked to any profile", internalErrs.NotFound)
		}
		lookup := store.NewRef(store.PatientsCollection, patientId)
		ref = &lookup
	}

	doc, err := l.store.Get(ctx, *ref)
	if err == store.ErrNotFound {
		return nil, fmt.Errorf("%w: patient profile missing", internalErrs.NotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error resolving device parent: %w", err)
	}

	kind := kindPreProvisioned
	if ref.Collection == store.CustomersCollection {
		kind = kindProfile
	}
	return &linkedRecord{kind: kind, ref: *ref, fields: doc.Fields}, nil
}

// copyToLookup mirrors the clinical record into the patient lookup
// collection with a back-reference to the new owner. Merge write, so
// anything already recorded there is kept.
func (l *StoreLinker) copyToLookup(ctx context.Context, patientId string, userId string, snapshot bson.M) error {
	fields := deepcopy.Copy(snapshot).(bson.M)
	fields["customerId"] = userId
	ref := store.NewRef(store.PatientsCollection, patientId)
	return l.store.Set(ctx, ref, fields, true)
}

func (l *StoreLinker) preservedIdentityFields(ctx context.Context, userId string) (bson.M, error) {
	preserved := bson.M{}
	current, err := l.store.Get(ctx, customers.ProfileRef(userId))
	if err == store.ErrNotFound {
		return preserved, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading current profile: %w", err)
	}

	for _, field := range identityFields {
		if v, ok := current.Fields[field]; ok {
			preserved[field] = v
		}
	}
	return preserved, nil
}

func (l *StoreLinker) consumeDevice(ctx context.Context, ref store.Ref, userId string) error {
	return l.store.Update(ctx, ref, bson.M{
		"customerId": userId,
		"status":     customers.DeviceStatusActive,
	})
}

// recordDevice adds the device to the new owner's own devices
// subcollection, omitting fields with no value.
func (l *StoreLinker) recordDevice(ctx context.Context, profileRef store.Ref, device *store.Document, request LinkRequest) error {
	fields := bson.M{
		"serialNumber": request.SerialNumber,
		"status":       customers.DeviceStatusActive,
		"addedDate":    time.Now().UTC(),
	}
	if name, ok := device.Fields["deviceName"]; ok && name != nil {
		fields["deviceName"] = name
	}
	if settings, ok := device.Fields["settings"]; ok && settings != nil {
		fields["settings"] = settings
	}
	if request.DeviceNumber != nil {
		fields["deviceNumber"] = *request.DeviceNumber
	} else if number, ok := device.Fields["deviceNumber"]; ok && number != nil {
		fields["deviceNumber"] = number
	}

	_, err := l.store.Add(ctx, profileRef, store.DevicesCollection, fields)
	return err
}
