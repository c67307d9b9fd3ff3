package clinicians

import (
	"context"
	"fmt"

	"github.com/megacare-dev/mega-care-api/store"
	"go.mongodb.org/mongo-driver/bson"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test MockRepository

type Repository interface {
	Get(ctx context.Context, clinicianId string) (*Clinician, error)
}

func NewRepository(client store.Client) (Repository, error) {
	return &repository{client: client}, nil
}

type repository struct {
	client store.Client
}

func (r *repository) Get(ctx context.Context, clinicianId string) (*Clinician, error) {
	ref := store.NewRef(store.CliniciansCollection, clinicianId)
	doc, err := r.client.Get(ctx, ref)
	if err == store.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching clinician: %w", err)
	}

	raw, err := bson.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("error encoding clinician document: %w", err)
	}
	clinician := &Clinician{}
	if err := bson.Unmarshal(raw, clinician); err != nil {
		return nil, fmt.Errorf("error decoding clinician document: %w", err)
	}
	clinician.Id = doc.Ref.ID
	return clinician, nil
}
