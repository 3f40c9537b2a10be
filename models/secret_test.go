package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() SecretCollection {
	return SecretCollection{Entries: []SecretEntry{
		{Service: "GitHub", Username: "octo", Secret: "p1"},
		{Service: "Gitlab", Username: "tanuki", Secret: "p2"},
		{Service: "bank", Username: "me", Secret: "p3"},
	}}
}

func TestNewSecretCollection_EncodesEmptyArray(t *testing.T) {
	data, err := json.Marshal(NewSecretCollection())
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(data))
}

func TestSecretEntry_JSONKeys(t *testing.T) {
	data, err := json.Marshal(SecretEntry{Service: "s", Username: "u", Secret: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"service":"s","username":"u","password":"p"}`, string(data))
}

func TestSecretCollection_Add(t *testing.T) {
	c := NewSecretCollection()
	c.Add(SecretEntry{Service: "a"})
	c.Add(SecretEntry{Service: "a"})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "a", c.Entries[1].Service)
}

func TestSecretCollection_Replace(t *testing.T) {
	c := sampleCollection()

	require.NoError(t, c.Replace(1, SecretEntry{Service: "new"}))
	assert.Equal(t, "new", c.Entries[1].Service)

	assert.ErrorIs(t, c.Replace(3, SecretEntry{}), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Replace(-1, SecretEntry{}), ErrIndexOutOfRange)
}

func TestSecretCollection_Remove(t *testing.T) {
	c := sampleCollection()

	require.NoError(t, c.Remove(0))
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Gitlab", c.Entries[0].Service)
	assert.Equal(t, "bank", c.Entries[1].Service)

	assert.ErrorIs(t, c.Remove(2), ErrIndexOutOfRange)
}

func TestSecretCollection_Search(t *testing.T) {
	c := sampleCollection()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty query matches all", query: "", want: []int{0, 1, 2}},
		{name: "case insensitive", query: "GIT", want: []int{0, 1}},
		{name: "trimmed", query: "  bank ", want: []int{2}},
		{name: "no match", query: "mail", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Search(tt.query))
		})
	}
}

func TestSecretCollection_CloneIsIndependent(t *testing.T) {
	c := sampleCollection()
	clone := c.Clone()

	clone.Entries[0].Service = "changed"
	clone.Add(SecretEntry{Service: "extra"})

	assert.Equal(t, "GitHub", c.Entries[0].Service)
	assert.Equal(t, 3, c.Len())
}
