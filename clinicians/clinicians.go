package clinicians

import (
	"context"
	"errors"

	"github.com/megacare-dev/mega-care-api/customers"
)

var ErrNotFound = errors.New("clinician not found")

type Service interface {
	ListPatients(ctx context.Context, clinicianId string) ([]*customers.Customer, error)
	GetPatient(ctx context.Context, clinicianId string, patientId string) (*customers.Customer, error)
	ListPatientReports(ctx context.Context, clinicianId string, patientId string, limit int) ([]*customers.DailyReport, error)
}

// Clinician is keyed by the clinician's auth subject id. The assigned
// patient list is the sole source of roster authorization.
type Clinician struct {
	Id               string   `bson:"-"`
	Name             *string  `bson:"name,omitempty"`
	AssignedPatients []string `bson:"assignedPatients,omitempty"`
}

func (c *Clinician) IsAssigned(patientId string) bool {
	for _, id := range c.AssignedPatients {
		if id == patientId {
			return true
		}
	}
	return false
}
