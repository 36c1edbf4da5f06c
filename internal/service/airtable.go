package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// AirtableClient mirrors waitlist signups into an Airtable base used by
// the marketing team. Syncs are best-effort.
type AirtableClient struct {
	apiKey  string
	baseID  string
	table   string
	baseURL string
	client  *http.Client
}

type airtableRecord struct {
	Fields map[string]interface{} `json:"fields"`
}

type airtablePayload struct {
	Records []airtableRecord `json:"records"`
}

func NewAirtableClient(apiKey, baseID, table string) *AirtableClient {
	return &AirtableClient{
		apiKey:  apiKey,
		baseID:  baseID,
		table:   table,
		baseURL: "https://api.airtable.com/v0",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SyncWaitlistEntry pushes one signup to Airtable. Returns whether the
// sync landed; errors are logged, never surfaced to the caller.
func (a *AirtableClient) SyncWaitlistEntry(name, email, phone, source string) bool {
	if a.apiKey == "" || a.baseID == "" {
		log.Println("Airtable credentials not configured, skipping waitlist sync")
		return false
	}

	payload := airtablePayload{
		Records: []airtableRecord{
			{Fields: map[string]interface{}{
				"Name":   name,
				"Email":  email,
				"Phone":  phone,
				"Source": source,
			}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal airtable payload: %v", err)
		return false
	}

	url := fmt.Sprintf("%s/%s/%s", a.baseURL, a.baseID, a.table)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Failed to create airtable request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("Failed to sync waitlist entry to airtable: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Airtable sync returned status %d", resp.StatusCode)
		return false
	}
	return true
}
