package updater

import (
	"encoding/json"

	"gpxsync/pkg/fulcrum"
)

type mockUpdate struct {
	ID         string
	Coords     [][]float64
	FormValues json.RawMessage
}

type mockRecordClient struct {
	FetchFunc  func(id string) (*fulcrum.Record, error)
	UpdateFunc func(id string, coords [][]float64, formValues json.RawMessage) error

	FetchCalls  []string
	UpdateCalls []mockUpdate
}

func (m *mockRecordClient) Fetch(id string) (*fulcrum.Record, error) {
	m.FetchCalls = append(m.FetchCalls, id)
	if m.FetchFunc != nil {
		return m.FetchFunc(id)
	}
	return &fulcrum.Record{FormValues: json.RawMessage(`{}`)}, nil
}

func (m *mockRecordClient) Update(id string, coords [][]float64, formValues json.RawMessage) error {
	m.UpdateCalls = append(m.UpdateCalls, mockUpdate{ID: id, Coords: coords, FormValues: formValues})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, coords, formValues)
	}
	return nil
}
