package api

import (
	"fmt"
	"time"

	"github.com/megacare-dev/mega-care-api/customers"
	internalErrs "github.com/megacare-dev/mega-care-api/errors"
	"github.com/megacare-dev/mega-care-api/reports"
)

const dateLayout = "2006-01-02"

type CustomerDto struct {
	Id              string           `json:"id"`
	LineId          *string          `json:"lineId,omitempty"`
	DisplayName     *string          `json:"displayName,omitempty"`
	Title           *string          `json:"title,omitempty"`
	FirstName       *string          `json:"firstName,omitempty"`
	LastName        *string          `json:"lastName,omitempty"`
	Dob             *string          `json:"dob,omitempty"`
	Location        *string          `json:"location,omitempty"`
	Status          *string          `json:"status,omitempty"`
	SetupDate       *time.Time       `json:"setupDate,omitempty"`
	AirViewNumber   *string          `json:"airViewNumber,omitempty"`
	MonitoringType  *string          `json:"monitoringType,omitempty"`
	AvailableData   *string          `json:"availableData,omitempty"`
	DealerPatientId *string          `json:"dealerPatientId,omitempty"`
	PatientId       *string          `json:"patientId,omitempty"`
	Organisation    *NamedDto        `json:"organisation,omitempty"`
	ClinicalUser    *NamedDto        `json:"clinicalUser,omitempty"`
	Compliance      *ComplianceDto   `json:"compliance,omitempty"`
	DataAccess      *DataAccessDto   `json:"dataAccess,omitempty"`
	LineProfile     *LineProfileDto  `json:"lineProfile,omitempty"`
}

type NamedDto struct {
	Name *string `json:"name,omitempty"`
}

type ComplianceDto struct {
	Status          *string  `json:"status,omitempty"`
	UsagePercentage *float64 `json:"usagePercentage,omitempty"`
}

type DataAccessDto struct {
	Type     *string `json:"type,omitempty"`
	Duration *string `json:"duration,omitempty"`
}

type LineProfileDto struct {
	UserId        *string `json:"userId,omitempty"`
	DisplayName   *string `json:"displayName,omitempty"`
	PictureUrl    *string `json:"pictureUrl,omitempty"`
	StatusMessage *string `json:"statusMessage,omitempty"`
	Email         *string `json:"email,omitempty"`
}

func NewCustomerDto(customer *customers.Customer) *CustomerDto {
	dto := &CustomerDto{
		Id:              customer.Id,
		LineId:          customer.LineId,
		DisplayName:     customer.DisplayName,
		Title:           customer.Title,
		FirstName:       customer.FirstName,
		LastName:        customer.LastName,
		Dob:             formatDate(customer.BirthDate),
		Location:        customer.Location,
		Status:          customer.Status,
		SetupDate:       customer.SetupDate,
		AirViewNumber:   customer.AirViewNumber,
		MonitoringType:  customer.MonitoringType,
		AvailableData:   customer.AvailableData,
		DealerPatientId: customer.DealerPatientId,
		PatientId:       customer.PatientId,
	}
	if customer.Organisation != nil {
		dto.Organisation = &NamedDto{Name: customer.Organisation.Name}
	}
	if customer.ClinicalUser != nil {
		dto.ClinicalUser = &NamedDto{Name: customer.ClinicalUser.Name}
	}
	if customer.Compliance != nil {
		dto.Compliance = &ComplianceDto{
			Status:          customer.Compliance.Status,
			UsagePercentage: customer.Compliance.UsagePercentage,
		}
	}
	if customer.DataAccess != nil {
		dto.DataAccess = &DataAccessDto{
			Type:     customer.DataAccess.Type,
			Duration: customer.DataAccess.Duration,
		}
	}
	if customer.LineProfile != nil {
		dto.LineProfile = &LineProfileDto{
			UserId:        customer.LineProfile.UserId,
			DisplayName:   customer.LineProfile.DisplayName,
			PictureUrl:    customer.LineProfile.PictureUrl,
			StatusMessage: customer.LineProfile.StatusMessage,
			Email:         customer.LineProfile.Email,
		}
	}
	return dto
}

func NewCustomersDto(list []*customers.Customer) []*CustomerDto {
	dtos := make([]*CustomerDto, 0, len(list))
	for _, customer := range list {
		dtos = append(dtos, NewCustomerDto(customer))
	}
	return dtos
}

type CreateCustomerDto struct {
	LineId          *string         `json:"lineId,omitempty"`
	DisplayName     *string         `json:"displayName,omitempty"`
	Title           *string         `json:"title,omitempty"`
	FirstName       *string         `json:"firstName,omitempty"`
	LastName        *string         `json:"lastName,omitempty"`
	Dob             *string         `json:"dob,omitempty"`
	Location        *string         `json:"location,omitempty"`
	Status          *string         `json:"status,omitempty"`
	AirViewNumber   *string         `json:"airViewNumber,omitempty"`
	MonitoringType  *string         `json:"monitoringType,omitempty"`
	AvailableData   *string         `json:"availableData,omitempty"`
	DealerPatientId *string         `json:"dealerPatientId,omitempty"`
	LineProfile     *LineProfileDto `json:"lineProfile,omitempty"`
}

func (d *CreateCustomerDto) Model(userId string) (customers.Customer, error) {
	customer := customers.Customer{
		Id:              userId,
		LineId:          d.LineId,
		DisplayName:     d.DisplayName,
		Title:           d.Title,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Location:        d.Location,
		Status:          d.Status,
		AirViewNumber:   d.AirViewNumber,
		MonitoringType:  d.MonitoringType,
		AvailableData:   d.AvailableData,
		DealerPatientId: d.DealerPatientId,
	}
	if d.Dob != nil {
		dob, err := parseDate(*d.Dob)
		if err != nil {
			return customer, err
		}
		customer.BirthDate = dob
	}
	if d.LineProfile != nil {
		customer.LineProfile = &customers.LineProfile{
			UserId:        d.LineProfile.UserId,
			DisplayName:   d.LineProfile.DisplayName,
			PictureUrl:    d.LineProfile.PictureUrl,
			StatusMessage: d.LineProfile.StatusMessage,
			Email:         d.LineProfile.Email,
		}
	}
	return customer, nil
}

type DeviceDto struct {
	Id           string                 `json:"id"`
	DeviceName   *string                `json:"deviceName,omitempty"`
	SerialNumber *string                `json:"serialNumber,omitempty"`
	DeviceNumber *string                `json:"deviceNumber,omitempty"`
	Status       *string                `json:"status,omitempty"`
	Settings     map[string]interface{} `json:"settings,omitempty"`
	AddedDate    *time.Time             `json:"addedDate,omitempty"`
}

func NewDeviceDto(device *customers.Device) *DeviceDto {
	return &DeviceDto{
		Id:           device.Id,
		DeviceName:   device.DeviceName,
		SerialNumber: device.SerialNumber,
		DeviceNumber: device.DeviceNumber,
		Status:       device.Status,
		Settings:     device.Settings,
		AddedDate:    device.AddedDate,
	}
}

type CreateDeviceDto struct {
	DeviceName   *string                `json:"deviceName,omitempty"`
	SerialNumber *string                `json:"serialNumber,omitempty"`
	DeviceNumber *string                `json:"deviceNumber,omitempty"`
	Status       *string                `json:"status,omitempty"`
	Settings     map[string]interface{} `json:"settings,omitempty"`
}

func (d *CreateDeviceDto) Model() customers.Device {
	return customers.Device{
		DeviceName:   d.DeviceName,
		SerialNumber: d.SerialNumber,
		DeviceNumber: d.DeviceNumber,
		Status:       d.Status,
		Settings:     d.Settings,
	}
}

type MaskDto struct {
	Id        string     `json:"id"`
	MaskName  *string    `json:"maskName,omitempty"`
	Size      *string    `json:"size,omitempty"`
	AddedDate *time.Time `json:"addedDate,omitempty"`
}

func NewMaskDto(mask *customers.Mask) *MaskDto {
	return &MaskDto{
		Id:        mask.Id,
		MaskName:  mask.MaskName,
		Size:      mask.Size,
		AddedDate: mask.AddedDate,
	}
}

type CreateMaskDto struct {
	MaskName *string `json:"maskName,omitempty"`
	Size     *string `json:"size,omitempty"`
}

func (d *CreateMaskDto) Model() customers.Mask {
	return customers.Mask{
		MaskName: d.MaskName,
		Size:     d.Size,
	}
}

type AirTubingDto struct {
	Id         string     `json:"id"`
	TubingName *string    `json:"tubingName,omitempty"`
	AddedDate  *time.Time `json:"addedDate,omitempty"`
}

func NewAirTubingDto(tubing *customers.AirTubing) *AirTubingDto {
	return &AirTubingDto{
		Id:         tubing.Id,
		TubingName: tubing.TubingName,
		AddedDate:  tubing.AddedDate,
	}
}

type CreateAirTubingDto struct {
	TubingName *string `json:"tubingName,omitempty"`
}

func (d *CreateAirTubingDto) Model() customers.AirTubing {
	return customers.AirTubing{
		TubingName: d.TubingName,
	}
}

type DistributionDto struct {
	Median       *float64 `json:"median,omitempty"`
	Percentile95 *float64 `json:"95thPercentile,omitempty"`
}

type EventsPerHourDto struct {
	Ahi           *float64 `json:"ahi,omitempty"`
	CentralApneas *float64 `json:"centralApneas,omitempty"`
	Hypopneas     *float64 `json:"hypopneas,omitempty"`
}

type DailyReportDto struct {
	Id                      string                 `json:"id"`
	ReportDate              *string                `json:"reportDate,omitempty"`
	UsageHours              *float64               `json:"usageHours,omitempty"`
	CheyneStokesRespiration *string                `json:"cheyneStokesRespiration,omitempty"`
	Rera                    *float64               `json:"rera,omitempty"`
	Leak                    *DistributionDto       `json:"leak,omitempty"`
	Pressure                *DistributionDto       `json:"pressure,omitempty"`
	EventsPerHour           *EventsPerHourDto      `json:"eventsPerHour,omitempty"`
	DeviceSnapshot          map[string]interface{} `json:"deviceSnapshot,omitempty"`
}

func NewDailyReportDto(report *customers.DailyReport) *DailyReportDto {
	dto := &DailyReportDto{
		Id:                      report.Id,
		ReportDate:              report.ReportDate,
		UsageHours:              report.UsageHours,
		CheyneStokesRespiration: report.CheyneStokesRespiration,
		Rera:                    report.Rera,
		DeviceSnapshot:          report.DeviceSnapshot,
	}
	if report.Leak != nil {
		dto.Leak = &DistributionDto{Median: report.Leak.Median, Percentile95: report.Leak.Percentile95}
	}
	if report.Pressure != nil {
		dto.Pressure = &DistributionDto{Median: report.Pressure.Median, Percentile95: report.Pressure.Percentile95}
	}
	if report.EventsPerHour != nil {
		dto.EventsPerHour = &EventsPerHourDto{
			Ahi:           report.EventsPerHour.Ahi,
			CentralApneas: report.EventsPerHour.CentralApneas,
			Hypopneas:     report.EventsPerHour.Hypopneas,
		}
	}
	return dto
}

func NewDailyReportsDto(list []*customers.DailyReport) []*DailyReportDto {
	dtos := make([]*DailyReportDto, 0, len(list))
	for _, report := range list {
		dtos = append(dtos, NewDailyReportDto(report))
	}
	return dtos
}

type CreateDailyReportDto struct {
	ReportDate              *string                `json:"reportDate,omitempty"`
	UsageHours              *float64               `json:"usageHours,omitempty"`
	CheyneStokesRespiration *string                `json:"cheyneStokesRespiration,omitempty"`
	Rera                    *float64               `json:"rera,omitempty"`
	Leak                    *DistributionDto       `json:"leak,omitempty"`
	Pressure                *DistributionDto       `json:"pressure,omitempty"`
	EventsPerHour           *EventsPerHourDto      `json:"eventsPerHour,omitempty"`
	DeviceSnapshot          map[string]interface{} `json:"deviceSnapshot,omitempty"`
}

func (d *CreateDailyReportDto) Model() (customers.DailyReport, error) {
	report := customers.DailyReport{
		UsageHours:              d.UsageHours,
		CheyneStokesRespiration: d.CheyneStokesRespiration,
		Rera:                    d.Rera,
		DeviceSnapshot:          d.DeviceSnapshot,
	}
	if d.ReportDate == nil {
		return report, fmt.Errorf("%w: reportDate is required", internalErrs.ConstraintViolation)
	}
	if _, err := time.Parse(dateLayout, *d.ReportDate); err != nil {
		return report, fmt.Errorf("%w: reportDate must be formatted as YYYY-MM-DD", internalErrs.ConstraintViolation)
	}
	report.Id = *d.ReportDate
	report.ReportDate = d.ReportDate
	if d.Leak != nil {
		report.Leak = &customers.Distribution{Median: d.Leak.Median, Percentile95: d.Leak.Percentile95}
	}
	if d.Pressure != nil {
		report.Pressure = &customers.Distribution{Median: d.Pressure.Median, Percentile95: d.Pressure.Percentile95}
	}
	if d.EventsPerHour != nil {
		report.EventsPerHour = &customers.EventsPerHour{
			Ahi:           d.EventsPerHour.Ahi,
			CentralApneas: d.EventsPerHour.CentralApneas,
			Hypopneas:     d.EventsPerHour.Hypopneas,
		}
	}
	return report, nil
}

type ReportDetailDto struct {
	Report                *DailyReportDto  `json:"report"`
	Analysis              reports.Analysis `json:"analysis"`
	OverallRecommendation string           `json:"overallRecommendation"`
}

func NewReportDetailDto(detail *reports.ReportDetail) *ReportDetailDto {
	return &ReportDetailDto{
		Report:                NewDailyReportDto(detail.Report),
		Analysis:              detail.Analysis,
		OverallRecommendation: detail.OverallRecommendation,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func parseDate(value string) (*time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: dates must be formatted as YYYY-MM-DD", internalErrs.ConstraintViolation)
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
