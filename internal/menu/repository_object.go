package menu

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// ObjectGetter is the slice of an object store the catalog needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// Document is the JSON layout of a catalog stored as an object.
type Document struct {
	Items []Item `json:"items"`
}

// ObjectSource reads the catalog from a JSON object in a bucket.
type ObjectSource struct {
	store ObjectGetter
	key   string
}

func NewObjectSource(store ObjectGetter, key string) *ObjectSource {
	return &ObjectSource{store: store, key: key}
}

func (s *ObjectSource) List(ctx context.Context) ([]Item, error) {
	raw, err := s.store.GetObject(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch catalog object %s", s.key)
	}
	return DecodeDocument(raw)
}

func DecodeDocument(raw []byte) ([]Item, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode catalog document")
	}
	return doc.Items, nil
}

func EncodeDocument(items []Item) ([]byte, error) {
	return json.MarshalIndent(Document{Items: items}, "", "  ")
}
