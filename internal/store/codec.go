package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// encodeCollection renders the collection as the canonical plaintext:
// {"entries":[{"service":..,"username":..,"password":..},...]}.
// A nil Entries slice is written as an empty array.
func encodeCollection(collection models.SecretCollection) ([]byte, error) {
	if collection.Entries == nil {
		collection = models.NewSecretCollection()
	}

	data, err := json.Marshal(collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}

// decodeCollection parses plaintext produced by encodeCollection.
func decodeCollection(plaintext []byte) (models.SecretCollection, error) {
	var collection models.SecretCollection
	if err := json.Unmarshal(plaintext, &collection); err != nil {
		return models.SecretCollection{}, fmt.Errorf("%w: %w", ErrDecodeCollection, err)
	}

	if collection.Entries == nil {
		collection.Entries = []models.SecretEntry{}
	}
	return collection, nil
}
