package payments

import (
	"context"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

// RazorpayGateway issues refunds against captured payments.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) Refund(ctx context.Context, paymentID string, amountPaise int64) error {
	data := map[string]interface{}{
		"speed": "normal",
	}
	_, err := g.client.Payment.Refund(paymentID, int(amountPaise), data, nil)
	if err != nil {
		return fmt.Errorf("razorpay refund %s: %w", paymentID, err)
	}
	return nil
}

// NopGateway skips refunds. Used when Razorpay keys are not configured.
type NopGateway struct{}

func (NopGateway) Refund(context.Context, string, int64) error {
	return nil
}
