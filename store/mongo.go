package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	idKey     = "_id"
	parentKey = "_parent"
)

func NewDocumentClient(db *mongo.Database) Client {
	return &documentClient{db: db}
}

// documentClient stores every subcollection in a mongo collection named
// after it. Nested documents use the full path as _id and carry the parent
// document reference in a _parent field, which is what makes group queries
// and parent resolution plain finds.
type documentClient struct {
	db *mongo.Database
}

var _ Client = &documentClient{}

func mongoID(ref Ref) string {
	if ref.Parent == nil {
		return ref.ID
	}
	return ref.Path()
}

func metaFields(ref Ref) bson.M {
	meta := bson.M{}
	if ref.Parent != nil {
		meta[parentKey] = bson.M{
			"collection": ref.Parent.Collection,
			"id":         ref.Parent.ID,
		}
	}
	return meta
}

func stripMeta(raw bson.M) bson.M {
	delete(raw, idKey)
	delete(raw, parentKey)
	return raw
}

func refFromRaw(collection string, raw bson.M) Ref {
	id, _ := raw[idKey].(string)
	ref := Ref{Collection: collection, ID: lastPathSegment(id)}
	if parent, ok := raw[parentKey].(bson.M); ok {
		parentCollection, _ := parent["collection"].(string)
		parentID, _ := parent["id"].(string)
		ref.Parent = &Ref{Collection: parentCollection, ID: parentID}
	}
	return ref
}

func (c *documentClient) Get(ctx context.Context, ref Ref) (*Document, error) {
	raw := bson.M{}
	err := c.db.Collection(ref.Collection).
		FindOne(ctx, bson.M{idKey: mongoID(ref)}).
		Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", ref.Path(), err)
	}

	return &Document{Ref: ref, Fields: stripMeta(raw)}, nil
}

func (c *documentClient) Set(ctx context.Context, ref Ref, fields bson.M, merge bool) error {
	selector := bson.M{idKey: mongoID(ref)}
	collection := c.db.Collection(ref.Collection)

	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	for k, v := range metaFields(ref) {
		doc[k] = v
	}

	var err error
	if merge {
		_, err = collection.UpdateOne(ctx, selector, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	} else {
		_, err = collection.ReplaceOne(ctx, selector, doc, options.Replace().SetUpsert(true))
	}
	if err != nil {
		return fmt.Errorf("error writing %s: %w", ref.Path(), err)
	}
	return nil
}

func (c *documentClient) Update(ctx context.Context, ref Ref, fields bson.M) error {
	selector := bson.M{idKey: mongoID(ref)}
	res, err := c.db.Collection(ref.Collection).UpdateOne(ctx, selector, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating %s: %w", ref.Path(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *documentClient) Add(ctx context.Context, parent Ref, collection string, fields bson.M) (Ref, error) {
	ref := parent.Child(collection, primitive.NewObjectID().Hex())

	doc := bson.M{idKey: mongoID(ref)}
	for k, v := range fields {
		doc[k] = v
	}
	for k, v := range metaFields(ref) {
		doc[k] = v
	}

	if _, err := c.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return Ref{}, fmt.Errorf("error adding document to %s: %w", collection, err)
	}
	return ref, nil
}

func (c *documentClient) Query(ctx context.Context, parent *Ref, collection string, filters []Filter, orderBy *Order, limit int64) ([]Document, error) {
	selector := selectorFromFilters(filters)
	if parent != nil {
		selector[parentKey+".collection"] = parent.Collection
		selector[parentKey+".id"] = parent.ID
	}

	opts := options.Find()
	if orderBy != nil {
		order := 1
		if orderBy.Descending {
			order = -1
		}
		opts.SetSort(bson.D{{Key: orderBy.Field, Value: order}})
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	return c.find(ctx, collection, selector, opts)
}

func (c *documentClient) QueryGroup(ctx context.Context, collection string, filters []Filter, limit int64) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	return c.find(ctx, collection, selectorFromFilters(filters), opts)
}

func (c *documentClient) find(ctx context.Context, collection string, selector bson.M, opts *options.FindOptions) ([]Document, error) {
	cursor, err := c.db.Collection(collection).Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", collection, err)
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("error decoding %s query: %w", collection, err)
	}

	documents := make([]Document, 0, len(raws))
	for _, raw := range raws {
		ref := refFromRaw(collection, raw)
		documents = append(documents, Document{Ref: ref, Fields: stripMeta(raw)})
	}
	return documents, nil
}

func selectorFromFilters(filters []Filter) bson.M {
	selector := bson.M{}
	for _, f := range filters {
		selector[f.Field] = f.Value
	}
	return selector
}
