package utils

import (
	"fmt"
	"log"
	"time"
	"yogveda/config"

	"github.com/go-resty/resty/v2"
)

type paymentStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// VerifyPayment checks a payment reference with the payment provider before an
// enrollment's payment is marked completed. Declared as a variable so tests
// can stub the provider away.
var VerifyPayment = func(reference string) (bool, error) {
	if reference == "" {
		return false, fmt.Errorf("empty payment reference")
	}

	client := resty.New().
		SetBaseURL(config.AppConfig.PaymentApiURL).
		SetTimeout(10 * time.Second).
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentApiKey)

	var result paymentStatusResponse
	resp, err := client.R().
		SetResult(&result).
		Get("payments/" + reference)
	if err != nil {
		log.Printf("Error verifying payment %s: %v", reference, err)
		return false, err
	}

	if resp.StatusCode() != 200 {
		return false, fmt.Errorf("payment lookup failed, code: %d", resp.StatusCode())
	}

	return result.Status == "captured" || result.Status == "paid", nil
}
