package fulcrum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Record is the remote record as returned by the API. FormValues is kept as
// raw JSON so an update sends the fields back exactly as they were fetched.
type Record struct {
	FormValues json.RawMessage `json:"form_values"`
	Geometry   *Geometry       `json:"geometry"`
}

// Geometry is the record's GeoJSON geometry attribute.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type envelope struct {
	Record Record `json:"record"`
}

type updateEnvelope struct {
	Record updateRecord `json:"record"`
}

type updateRecord struct {
	FormValues json.RawMessage `json:"form_values"`
	Geometry   Geometry        `json:"geometry"`
}

// StatusError is a non-success response from the record API.
type StatusError struct {
	RecordID string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("record %s: status %d: %s", e.RecordID, e.Status, e.Body)
}

// Client talks to the record-management API. Both calls share the same
// token header; the zero http.Client default transport settings apply.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}
}

func (c *Client) recordURL(id string) string {
	return fmt.Sprintf("%s/records/%s.json", c.baseURL, id)
}

func (c *Client) do(method, id string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, c.recordURL(id), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-ApiToken", c.token)
	return c.http.Do(req)
}

// Fetch retrieves the current representation of a record.
func (c *Client) Fetch(id string) (*Record, error) {
	resp, err := c.do(http.MethodGet, id, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{RecordID: id, Status: resp.StatusCode, Body: string(raw)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("record %s: decode response: %w", id, err)
	}
	return &env.Record, nil
}

// Update replaces the record with the given form values and a LineString
// geometry built from coords ([lon, lat] pairs, in track order). The API has
// no partial-field update: the caller must pass the form values from a prior
// Fetch or they are wiped.
func (c *Client) Update(id string, coords [][]float64, formValues json.RawMessage) error {
	if formValues == nil {
		formValues = json.RawMessage(`{}`)
	}
	payload, err := json.Marshal(updateEnvelope{
		Record: updateRecord{
			FormValues: formValues,
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coords,
			},
		},
	})
	if err != nil {
		return err
	}

	resp, err := c.do(http.MethodPatch, id, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &StatusError{RecordID: id, Status: resp.StatusCode, Body: string(raw)}
	}
	return nil
}
