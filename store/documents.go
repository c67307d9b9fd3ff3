package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	CustomersCollection    = "customers"
	PatientsCollection     = "patients"
	CliniciansCollection   = "clinicians"
	DevicesCollection      = "devices"
	MasksCollection        = "masks"
	AirTubingCollection    = "airTubing"
	DailyReportsCollection = "dailyReports"
)

// Ref addresses a single document. Subcollection documents carry a
// reference to the document they are nested under, so a ref obtained from a
// group query can always be walked back to its parent.
type Ref struct {
	Collection string
	ID         string
	Parent     *Ref
}

func NewRef(collection, id string) Ref {
	return Ref{Collection: collection, ID: id}
}

func (r Ref) Child(collection, id string) Ref {
	parent := r
	return Ref{Collection: collection, ID: id, Parent: &parent}
}

func (r Ref) Path() string {
	if r.Parent == nil {
		return r.Collection + "/" + r.ID
	}
	return r.Parent.Path() + "/" + r.Collection + "/" + r.ID
}

func lastPathSegment(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

type Document struct {
	Ref    Ref
	Fields bson.M
}

// Filter is a single equality constraint. Multiple filters are combined
// with AND.
type Filter struct {
	Field string
	Value interface{}
}

type Order struct {
	Field      string
	Descending bool
}

//go:generate mockgen --build_flags=--mod=mod -source=./documents.go -destination=./test/mock_client.go -package test MockClient

// Client is the generic surface over the hierarchical document store.
// Absence of a document is reported as ErrNotFound, never as a nil result.
type Client interface {
	// Get fetches one document by ref.
	Get(ctx context.Context, ref Ref) (*Document, error)

	// Set writes a document. With merge the named fields are combined into
	// the existing document, without it the document is fully replaced.
	// Both variants create the document when it does not exist.
	Set(ctx context.Context, ref Ref, fields bson.M, merge bool) error

	// Update patches the named fields of an existing document and fails
	// with ErrNotFound when there is none.
	Update(ctx context.Context, ref Ref, fields bson.M) error

	// Add creates a document with a generated id in a subcollection of the
	// parent document.
	Add(ctx context.Context, parent Ref, collection string, fields bson.M) (Ref, error)

	// Query runs equality filters against one collection. A nil parent
	// targets a top-level collection.
	Query(ctx context.Context, parent *Ref, collection string, filters []Filter, orderBy *Order, limit int64) ([]Document, error)

	// QueryGroup runs equality filters against every subcollection with the
	// given name regardless of the parent document.
	QueryGroup(ctx context.Context, collection string, filters []Filter, limit int64) ([]Document, error)
}
