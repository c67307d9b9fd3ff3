package linking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/megacare-dev/mega-care-api/config"
)

var ErrRegistryNotFound = errors.New("no registry record for device")

// RegistryRecord is the patient record held by the external device
// registry, keyed by the device's serial and device numbers.
type RegistryRecord struct {
	PatientId       string `json:"patientId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DisplayName     string `json:"displayName"`
	DateOfBirth     string `json:"dateOfBirth"` // YYYY-MM-DD
	DealerPatientId string `json:"dealerPatientId"`
	Organisation    string `json:"organisation"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./registry.go -destination=./test/mock_registry.go -package test MockRegistry

type Registry interface {
	FindPatient(ctx context.Context, serialNumber string, deviceNumber string) (*RegistryRecord, error)
}

func NewRegistry(cfg *config.Config) Registry {
	client := resty.New().
		SetBaseURL(cfg.PatientRegistryUrl).
		SetHeader("X-Api-Key", cfg.PatientRegistryApiKey).
		SetTimeout(10 * time.Second)
	return &restyRegistry{http: client}
}

type restyRegistry struct {
	http *resty.Client
}

var _ Registry = &restyRegistry{}

func (r *restyRegistry) FindPatient(ctx context.Context, serialNumber string, deviceNumber string) (*RegistryRecord, error) {
	record := &RegistryRecord{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetQueryParam("serialNumber", serialNumber).
		SetQueryParam("deviceNumber", deviceNumber).
		SetResult(record).
		Get("/patients/lookup")
	if err != nil {
		return nil, fmt.Errorf("error calling patient registry: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrRegistryNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("patient registry returned %s", resp.Status())
	}
	return record, nil
}
