package customers

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("customer profile not found")
	ErrDuplicate      = errors.New("customer profile already exists")
	ErrReportNotFound = errors.New("daily report not found")
)

type Service interface {
	Get(ctx context.Context, userId string) (*Customer, error)
	Create(ctx context.Context, customer Customer) (*Customer, error)
	FindByLineId(ctx context.Context, lineId string) (*Customer, error)

	AddDevice(ctx context.Context, userId string, device Device) (*Device, error)
	ListDevices(ctx context.Context, userId string) ([]*Device, error)
	AddMask(ctx context.Context, userId string, mask Mask) (*Mask, error)
	ListMasks(ctx context.Context, userId string) ([]*Mask, error)
	AddAirTubing(ctx context.Context, userId string, tubing AirTubing) (*AirTubing, error)
	ListAirTubing(ctx context.Context, userId string) ([]*AirTubing, error)

	UpsertDailyReport(ctx context.Context, userId string, report DailyReport) (*DailyReport, error)
	ListDailyReports(ctx context.Context, userId string, limit int) ([]*DailyReport, error)
	GetDailyReport(ctx context.Context, userId string, date string) (*DailyReport, error)
	LatestDailyReport(ctx context.Context, userId string) (*DailyReport, error)
}

// Customer is the profile of one authenticated end-user. The document id is
// the user's auth subject id, which is what guarantees at most one profile
// per identity.
type Customer struct {
	Id              string        `bson:"-"`
	LineId          *string       `bson:"lineId,omitempty"`
	DisplayName     *string       `bson:"displayName,omitempty"`
	Title           *string       `bson:"title,omitempty"`
	FirstName       *string       `bson:"firstName,omitempty"`
	LastName        *string       `bson:"lastName,omitempty"`
	BirthDate       *time.Time    `bson:"dob,omitempty"`
	Location        *string       `bson:"location,omitempty"`
	Status          *string       `bson:"status,omitempty"`
	SetupDate       *time.Time    `bson:"setupDate,omitempty"`
	AirViewNumber   *string       `bson:"airViewNumber,omitempty"`
	MonitoringType  *string       `bson:"monitoringType,omitempty"`
	AvailableData   *string       `bson:"availableData,omitempty"`
	DealerPatientId *string       `bson:"dealerPatientId,omitempty"`
	PatientId       *string       `bson:"patientId,omitempty"`
	Organisation    *Organisation `bson:"organisation,omitempty"`
	ClinicalUser    *ClinicalUser `bson:"clinicalUser,omitempty"`
	Compliance      *Compliance   `bson:"compliance,omitempty"`
	DataAccess      *DataAccess   `bson:"dataAccess,omitempty"`
	LineProfile     *LineProfile  `bson:"lineProfile,omitempty"`
}

// LineProfile is the snapshot of the external login identity captured at
// login time. It survives any clinical record merge.
type LineProfile struct {
	UserId        *string `bson:"userId,omitempty"`
	DisplayName   *string `bson:"displayName,omitempty"`
	PictureUrl    *string `bson:"pictureUrl,omitempty"`
	StatusMessage *string `bson:"statusMessage,omitempty"`
	Email         *string `bson:"email,omitempty"`
}

type Organisation struct {
	Name *string `bson:"name,omitempty"`
}

type ClinicalUser struct {
	Name *string `bson:"name,omitempty"`
}

type Compliance struct {
	Status          *string  `bson:"status,omitempty"`
	UsagePercentage *float64 `bson:"usagePercentage,omitempty"`
}

type DataAccess struct {
	Type     *string `bson:"type,omitempty"`
	Duration *string `bson:"duration,omitempty"`
}

const (
	DeviceStatusUnlink = "unlink"
	DeviceStatusActive = "active"
)

type Device struct {
	Id           string                 `bson:"-"`
	DeviceName   *string                `bson:"deviceName,omitempty"`
	SerialNumber *string                `bson:"serialNumber,omitempty"`
	DeviceNumber *string                `bson:"deviceNumber,omitempty"`
	Status       *string                `bson:"status,omitempty"`
	Settings     map[string]interface{} `bson:"settings,omitempty"`
	AddedDate    *time.Time             `bson:"addedDate,omitempty"`
	PatientId    *string                `bson:"patientId,omitempty"`
	CustomerId   *string                `bson:"customerId,omitempty"`
}

type Mask struct {
	Id        string     `bson:"-"`
	MaskName  *string    `bson:"maskName,omitempty"`
	Size      *string    `bson:"size,omitempty"`
	AddedDate *time.Time `bson:"addedDate,omitempty"`
}

type AirTubing struct {
	Id         string     `bson:"-"`
	TubingName *string    `bson:"tubingName,omitempty"`
	AddedDate  *time.Time `bson:"addedDate,omitempty"`
}

// DailyReport is keyed by its ISO date string, so a second submission for
// the same date overwrites the first.
type DailyReport struct {
	Id                      string                 `bson:"-"`
	ReportDate              *string                `bson:"reportDate,omitempty"`
	UsageHours              *float64               `bson:"usageHours,omitempty"`
	CheyneStokesRespiration *string                `bson:"cheyneStokesRespiration,omitempty"`
	Rera                    *float64               `bson:"rera,omitempty"`
	Leak                    *Distribution          `bson:"leak,omitempty"`
	Pressure                *Distribution          `bson:"pressure,omitempty"`
	EventsPerHour           *EventsPerHour         `bson:"eventsPerHour,omitempty"`
	DeviceSnapshot          map[string]interface{} `bson:"deviceSnapshot,omitempty"`
}

type Distribution struct {
	Median       *float64 `bson:"median,omitempty"`
	Percentile95 *float64 `bson:"95thPercentile,omitempty"`
}

type EventsPerHour struct {
	Ahi           *float64 `bson:"ahi,omitempty"`
	CentralApneas *float64 `bson:"centralApneas,omitempty"`
	Hypopneas     *float64 `bson:"hypopneas,omitempty"`
}
