package customers

import (
	"context"
	"fmt"
	"time"

	"github.com/megacare-dev/mega-care-api/store"
	"go.mongodb.org/mongo-driver/bson"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/megacare-dev/mega-care-api/customers=customers.go MockRepository

type Repository interface {
	Service
}

func NewRepository(client store.Client) (Repository, error) {
	return &repository{client: client}, nil
}

type repository struct {
	client store.Client
}

var _ Repository = &repository{}

func ProfileRef(userId string) store.Ref {
	return store.NewRef(store.CustomersCollection, userId)
}

// DecodeProfile turns a raw profile document into a Customer. The document
// id becomes the customer id.
func DecodeProfile(doc *store.Document) (*Customer, error) {
	customer := &Customer{}
	if err := decodeFields(doc.Fields, customer); err != nil {
		return nil, err
	}
	customer.Id = doc.Ref.ID
	return customer, nil
}

func decodeFields(fields bson.M, out interface{}) error {
	raw, err := bson.Marshal(fields)
	if err != nil {
		return fmt.Errorf("error encoding document fields: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error decoding document fields: %w", err)
	}
	return nil
}

func encodeFields(in interface{}) (bson.M, error) {
	raw, err := bson.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("error encoding fields: %w", err)
	}
	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("error decoding fields: %w", err)
	}
	return fields, nil
}

func (r *repository) Get(ctx context.Context, userId string) (*Customer, error) {
	doc, err := r.client.Get(ctx, ProfileRef(userId))
	if err == store.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return DecodeProfile(doc)
}

func (r *repository) Create(ctx context.Context, customer Customer) (*Customer, error) {
	ref := ProfileRef(customer.Id)
	if _, err := r.client.Get(ctx, ref); err == nil {
		return nil, ErrDuplicate
	} else if err != store.ErrNotFound {
		return nil, err
	}

	if customer.SetupDate == nil {
		now := time.Now().UTC()
		customer.SetupDate = &now
	}

	fields, err := encodeFields(customer)
	if err != nil {
		return nil, err
	}
	if err := r.client.Set(ctx, ref, fields, false); err != nil {
		return nil, fmt.Errorf("error creating customer profile: %w", err)
	}

	return r.Get(ctx, customer.Id)
}

func (r *repository) FindByLineId(ctx context.Context, lineId string) (*Customer, error) {
	filters := []store.Filter{{Field: "lineId", Value: lineId}}
	docs, err := r.client.Query(ctx, nil, store.CustomersCollection, filters, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("error querying customers by line id: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return DecodeProfile(&docs[0])
}

func (r *repository) AddDevice(ctx context.Context, userId string, device Device) (*Device, error) {
	if device.AddedDate == nil {
		now := time.Now().UTC()
		device.AddedDate = &now
	}
	fields, err := encodeFields(device)
	if err != nil {
		return nil, err
	}
	ref, err := r.client.Add(ctx, ProfileRef(userId), store.DevicesCollection, fields)
	if err != nil {
		return nil, fmt.Errorf("error adding device: %w", err)
	}
	device.Id = ref.ID
	return &device, nil
}

func (r *repository) ListDevices(ctx context.Context, userId string) ([]*Device, error) {
	parent := ProfileRef(userId)
	docs, err := r.client.Query(ctx, &parent, store.DevicesCollection, nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}

	devices := make([]*Device, 0, len(docs))
	for i := range docs {
		device := &Device{}
		if err := decodeFields(docs[i].Fields, device); err != nil {
			return nil, err
		}
		device.Id = docs[i].Ref.ID
		devices = append(devices, device)
	}
	return devices, nil
}

func (r *repository) AddMask(ctx context.Context, userId string, mask Mask) (*Mask, error) {
	if mask.AddedDate == nil {
		now := time.Now().UTC()
		mask.AddedDate = &now
	}
	fields, err := encodeFields(mask)
	if err != nil {
		return nil, err
	}
	ref, err := r.client.Add(ctx, ProfileRef(userId), store.MasksCollection, fields)
	if err != nil {
		return nil, fmt.Errorf("error adding mask: %w", err)
	}
	mask.Id = ref.ID
	return &mask, nil
}

func (r *repository) ListMasks(ctx context.Context, userId string) ([]*Mask, error) {
	parent := ProfileRef(userId)
	docs, err := r.client.Query(ctx, &parent, store.MasksCollection, nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing masks: %w", err)
	}

	masks := make([]*Mask, 0, len(docs))
	for i := range docs {
		mask := &Mask{}
		if err := decodeFields(docs[i].Fields, mask); err != nil {
			return nil, err
		}
		mask.Id = docs[i].Ref.ID
		masks = append(masks, mask)
	}
	return masks, nil
}

func (r *repository) AddAirTubing(ctx context.Context, userId string, tubing AirTubing) (*AirTubing, error) {
	if tubing.AddedDate == nil {
		now := time.Now().UTC()
		tubing.AddedDate = &now
	}
	fields, err := encodeFields(tubing)
	if err != nil {
		return nil, err
	}
	ref, err := r.client.Add(ctx, ProfileRef(userId), store.AirTubingCollection, fields)
	if err != nil {
		return nil, fmt.Errorf("error adding air tubing: %w", err)
	}
	tubing.Id = ref.ID
	return &tubing, nil
}

func (r *repository) ListAirTubing(ctx context.Context, userId string) ([]*AirTubing, error) {
	parent := ProfileRef(userId)
	docs, err := r.client.Query(ctx, &parent, store.AirTubingCollection, nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing air tubing: %w", err)
	}

	tubings := make([]*AirTubing, 0, len(docs))
	for i := range docs {
		tubing := &AirTubing{}
		if err := decodeFields(docs[i].Fields, tubing); err != nil {
			return nil, err
		}
		tubing.Id = docs[i].Ref.ID
		tubings = append(tubings, tubing)
	}
	return tubings, nil
}

func (r *repository) UpsertDailyReport(ctx context.Context, userId string, report DailyReport) (*DailyReport, error) {
	report.ReportDate = &report.Id
	fields, err := encodeFields(report)
	if err != nil {
		return nil, err
	}

	ref := ProfileRef(userId).Child(store.DailyReportsCollection, report.Id)
	if err := r.client.Set(ctx, ref, fields, false); err != nil {
		return nil, fmt.Errorf("error writing daily report: %w", err)
	}
	return r.GetDailyReport(ctx, userId, report.Id)
}

func (r *repository) ListDailyReports(ctx context.Context, userId string, limit int) ([]*DailyReport, error) {
	parent := ProfileRef(userId)
	orderBy := &store.Order{Field: "reportDate", Descending: true}
	docs, err := r.client.Query(ctx, &parent, store.DailyReportsCollection, nil, orderBy, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing daily reports: %w", err)
	}

	reports := make([]*DailyReport, 0, len(docs))
	for i := range docs {
		report := &DailyReport{}
		if err := decodeFields(docs[i].Fields, report); err != nil {
			return nil, err
		}
		report.Id = docs[i].Ref.ID
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *repository) GetDailyReport(ctx context.Context, userId string, date string) (*DailyReport, error) {
	ref := ProfileRef(userId).Child(store.DailyReportsCollection, date)
	doc, err := r.client.Get(ctx, ref)
	if err == store.ErrNotFound {
		return nil, ErrReportNotFound
	} else if err != nil {
		return nil, err
	}

	report := &DailyReport{}
	if err := decodeFields(doc.Fields, report); err != nil {
		return nil, err
	}
	report.Id = doc.Ref.ID
	return report, nil
}

func (r *repository) LatestDailyReport(ctx context.Context, userId string) (*DailyReport, error) {
	reports, err := r.ListDailyReports(ctx, userId, 1)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrReportNotFound
	}
	return reports[0], nil
}
