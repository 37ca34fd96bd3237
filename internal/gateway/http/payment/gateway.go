package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pako/internal/entities"
	retrierconfig "pako/pkg/retrier"
	"pako/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "mobile-money"

	captureCurrency = "XOF"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

type MoneyGateway struct {
	client  httpClient
	retrier retrier
	baseURL string
}

func New(client httpClient, baseURL string) *MoneyGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &MoneyGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
	}
}

func (g *MoneyGateway) Capture(ctx context.Context, amount int64, method entities.PaymentMethodType, payerPhone string) (*entities.PaymentCapture, error) {
	payload, err := json.Marshal(captureRequest{
		Amount:   amount,
		Currency: captureCurrency,
		Method:   string(method),
		Phone:    payerPhone,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, marshal capture: %w", err)
	}

	var captureResp captureResponse

	err = g.executeWithMetrics(ctx, "Capture", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/captures", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusMultipleChoices {
			return &statusError{code: resp.StatusCode}
		}

		return json.NewDecoder(resp.Body).Decode(&captureResp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, capture %d %s: %w", amount, captureCurrency, err)
	}

	return toDomain(&captureResp), nil
}

// A declined capture is a successful HTTP exchange; only transport
// failures and overload statuses are worth another attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if !errors.As(err, &se) {
		return true
	}

	switch se.code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (g *MoneyGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "OK"
	}

	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "ERR"
}
