package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	retrierconfig "pako/pkg/retrier"
	"pako/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "sms-provider"
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

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type SMSGateway struct {
	client  httpClient
	retrier retrier
	baseURL string
}

func New(client httpClient, baseURL string) *SMSGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &SMSGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
	}
}

func (g *SMSGateway) SendSMS(ctx context.Context, phone, message string) error {
	payload, err := json.Marshal(smsRequest{
		To:      phone,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("gateway notification, marshal sms: %w", err)
	}

	err = g.executeWithMetrics(ctx, "SendSMS", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/sms", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusMultipleChoices {
			return &statusError{code: resp.StatusCode}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("gateway notification, send sms: %w", err)
	}

	return nil
}

// Transport-level failures are always retried; HTTP statuses only when
// the provider signals overload or a transient server fault.
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

func (g *SMSGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
