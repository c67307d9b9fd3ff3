package linking

import (
	"context"
	"fmt"

	"github.com/megacare-dev/mega-care-api/config"
	"github.com/megacare-dev/mega-care-api/customers"
	"github.com/megacare-dev/mega-care-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type LinkRequest struct {
	SerialNumber string
	DeviceNumber *string
}

//go:generate mockgen --build_flags=--mod=mod -source=./linking.go -destination=./test/mock_linker.go -package test MockDeviceLinker

// DeviceLinker binds a physical device, identified by serial number, to the
// authenticated user's profile. The two implementations have different data
// sources and different conflict rules and are never mixed: a deployment
// picks one at construction time.
type DeviceLinker interface {
	Link(ctx context.Context, userId string, request LinkRequest) (*customers.Customer, error)
}

func NewDeviceLinker(cfg *config.Config, client store.Client, registry Registry, logger *zap.SugaredLogger) (DeviceLinker, error) {
	switch cfg.LinkerMode {
	case "store", "":
		return NewStoreLinker(client, logger), nil
	case "registry":
		if cfg.PatientRegistryUrl == "" {
			return nil, fmt.Errorf("registry linker requires MEGACARE_PATIENT_REGISTRY_URL")
		}
		return NewRegistryLinker(registry, client, logger), nil
	default:
		return nil, fmt.Errorf("unknown device linker %q", cfg.LinkerMode)
	}
}

type recordKind int

const (
	kindProfile recordKind = iota
	kindPreProvisioned
)

// linkedRecord is the resolved owner of a discovered device: either a
// customer profile or a pre-provisioned patient record. Resolving it once
// here keeps collection name comparisons out of the engine steps.
type linkedRecord struct {
	kind   recordKind
	ref    store.Ref
	fields bson.M
}

// compensation is the outcome of a best-effort side step. Failures are
// collected and logged after the main commit, never surfaced to the caller.
type compensation struct {
	step string
	err  error
}

func logCompensations(logger *zap.SugaredLogger, userId string, serialNumber string, compensations []compensation) {
	for _, c := range compensations {
		logger.Warnw("device link compensating step failed",
			"step", c.step,
			"userId", userId,
			"serialNumber", serialNumber,
			"error", c.err,
		)
	}
}
