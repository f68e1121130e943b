package twilio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.twilio.com/2010-04-01"

const Provider = "twilio"

type Client struct {
	baseURL        string
	accountSID     string
	authToken      string
	fromPhone      string
	statusCallback string
	http           *http.Client
}

// NewClient builds a Messages API client. statusCallback may be empty, in
// which case Twilio is not asked for delivery-status callbacks. baseURL is
// only overridden in tests; pass "" for the real API.
func NewClient(accountSID, authToken, fromPhone, statusCallback, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:        baseURL,
		accountSID:     accountSID,
		authToken:      authToken,
		fromPhone:      fromPhone,
		statusCallback: statusCallback,
		http:           &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.accountSID != "" && c.authToken != "" && c.fromPhone != ""
}

// Send posts one SMS and returns the provider message id and initial status.
func (c *Client) Send(to, body string) (*MessageOutput, error) {
	if !c.Configured() {
		return nil, errors.New("twilio env missing (SID/TOKEN/FROM)")
	}

	form := url.Values{}
	form.Set("From", c.fromPhone)
	form.Set("To", to)
	form.Set("Body", body)
	if c.statusCallback != "" {
		form.Set("StatusCallback", c.statusCallback)
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("twilio rejected message (status %d, code %d): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("twilio rejected message (status %d)", resp.StatusCode)
	}

	var response messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("twilio response decode failed: %w", err)
	}

	status := response.Status
	if status == "" {
		status = StatusQueued
	}

	return &MessageOutput{SID: response.Sid, Status: status}, nil
}
