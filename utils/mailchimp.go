package utils

import (
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"openstudents/config"

	"github.com/go-resty/resty/v2"
)

type mailchimpMember struct {
	EmailAddress string            `json:"email_address"`
	Status       string            `json:"status"`
	MergeFields  map[string]string `json:"merge_fields"`
}

type mailchimpError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// SubscribeToMailchimp adds an address to the configured audience. The
// datacenter is taken from the API key suffix (key-us1 style), falling back to
// the configured server prefix.
func SubscribeToMailchimp(email, firstName, lastName string) error {
	apiKey := config.AppConfig.MailchimpAPIKey
	audience := config.AppConfig.MailchimpAudienceID
	if apiKey == "" || audience == "" {
		return fmt.Errorf("newsletter system not configured")
	}

	datacenter := config.AppConfig.MailchimpServerPrefix
	if parts := strings.Split(apiKey, "-"); len(parts) == 2 && parts[1] != "" {
		datacenter = parts[1]
	}

	url := fmt.Sprintf("https://%s.api.mailchimp.com/3.0/lists/%s/members", datacenter, audience)
	basic := base64.StdEncoding.EncodeToString([]byte("anystring:" + apiKey))

	var errorResp mailchimpError

	resp, err := resty.New().R().
		SetHeader("Authorization", "Basic "+basic).
		SetHeader("Content-Type", "application/json").
		SetBody(mailchimpMember{
			EmailAddress: email,
			Status:       "subscribed",
			MergeFields: map[string]string{
				"FNAME": firstName,
				"LNAME": lastName,
			},
		}).
		SetError(&errorResp).
		Post(url)

	if err != nil {
		log.Printf("ERROR: Mailchimp request failed for %s: %v", email, err)
		return fmt.Errorf("could not reach newsletter provider: %w", err)
	}

	if resp.IsError() {
		log.Printf("ERROR: Mailchimp subscription error for %s: %d %s", email, resp.StatusCode(), errorResp.Detail)
		if errorResp.Detail != "" {
			return fmt.Errorf("mailchimp: %s", errorResp.Detail)
		}
		return fmt.Errorf("mailchimp: status %d", resp.StatusCode())
	}

	return nil
}
