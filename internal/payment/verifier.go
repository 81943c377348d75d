package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kitforge/order-service/internal/config"
)

// Verifier checks a capture against the payment provider's intent state. The
// provider is an opaque collaborator: "was amount X captured for ref Y".
type Verifier struct {
	logger    *slog.Logger
	client    *http.Client
	verifyURL string
	apiKey    string
	timeout   time.Duration
}

func NewVerifier(logger *slog.Logger, cfg config.Payment) *Verifier {
	return &Verifier{
		logger:    logger.With(slog.String("component", "payment_verifier")),
		client:    &http.Client{Timeout: cfg.Timeout},
		verifyURL: cfg.VerifyURL,
		apiKey:    cfg.APIKey,
		timeout:   cfg.Timeout,
	}
}

type intentResponse struct {
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount_minor"`
}

// VerifyCapture reports whether the provider holds a succeeded capture of
// exactly amountMinor for paymentRef. It carries its own timeout; on a timeout
// the caller leaves the order pending rather than in an ambiguous state.
func (v *Verifier) VerifyCapture(ctx context.Context, paymentRef string, amountMinor int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s", v.verifyURL, paymentRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to verify capture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return false, fmt.Errorf("failed to decode intent: %w", err)
	}

	if intent.Status != "succeeded" {
		v.logger.WarnContext(ctx, "capture not succeeded",
			slog.String("payment_ref", paymentRef), slog.String("status", intent.Status))
		return false, nil
	}
	if intent.AmountMinor != amountMinor {
		v.logger.WarnContext(ctx, "captured amount differs from order amount",
			slog.String("payment_ref", paymentRef),
			slog.Int64("captured_minor", intent.AmountMinor),
			slog.Int64("order_minor", amountMinor))
		return false, nil
	}
	return true, nil
}
