package utils

import (
	"fmt"
	"log"
	"strings"
	"time"

	"openstudents/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PaystackVerifyData is the transaction detail returned by Paystack's verify endpoint.
// Amount is in minor units (kobo/cents).
type PaystackVerifyData struct {
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
	Reference string `json:"reference"`
}

// paystackVerifyResponse is the envelope around the verify payload
type paystackVerifyResponse struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    PaystackVerifyData `json:"data"`
}

type paystackAPIError struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// GeneratePaymentReference creates a new checkout reference shared with Paystack
func GeneratePaymentReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:7])
	return fmt.Sprintf("TOS-%d-%s", time.Now().UnixMilli(), suffix)
}

// VerifyPaystackPayment fetches the authoritative transaction status for a
// reference directly from Paystack. secretOverride takes precedence over the
// configured secret when non-empty.
func VerifyPaystackPayment(reference, secretOverride string) (*PaystackVerifyData, error) {
	secret := secretOverride
	if secret == "" {
		secret = config.AppConfig.PaystackSecretKey
	}
	if secret == "" {
		log.Println("CRITICAL: PAYSTACK_SECRET_KEY is not configured.")
		return nil, fmt.Errorf("payment system not configured")
	}

	client := resty.New()
	var successResp paystackVerifyResponse
	var errorResp paystackAPIError

	resp, err := client.R().
		SetAuthToken(secret).
		SetResult(&successResp).
		SetError(&errorResp).
		Get(config.AppConfig.PaystackBaseURL + "/transaction/verify/" + reference)

	if err != nil {
		log.Printf("ERROR: Paystack verify request failed for reference '%s': %v", reference, err)
		return nil, fmt.Errorf("could not connect to payment provider: %w", err)
	}

	if resp.IsError() {
		log.Printf("ERROR: Paystack API error for reference '%s' - Status: %s, Message: '%s'",
			reference, resp.Status(), errorResp.Message)
		if errorResp.Message != "" {
			return nil, fmt.Errorf("paystack API error: %s", errorResp.Message)
		}
		return nil, fmt.Errorf("payment verification failed: %s", resp.Status())
	}

	if !successResp.Status || successResp.Data.Status != "success" {
		if successResp.Message != "" {
			return nil, fmt.Errorf("payment verification failed: %s", successResp.Message)
		}
		return nil, fmt.Errorf("payment not successful (status %q)", successResp.Data.Status)
	}

	return &successResp.Data, nil
}
