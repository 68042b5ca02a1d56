// Package resolver is the HTTP client for the banking partner's account
// name enquiry, used to verify a bank account before it is linked.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/rs/zerolog"
)

const defaultRejection = "account could not be verified"

// Client implements ports.AccountResolver.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a resolver client with the given request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type verifyAccountResponse struct {
	Data struct {
		Attributes struct {
			AccountName string `json:"accountName"`
			Bank        struct {
				ID string `json:"id"`
			} `json:"bank"`
		} `json:"attributes"`
	} `json:"data"`
}

// ErrorResponse is the partner's error envelope.
type ErrorResponse struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Status string `json:"status"`
	} `json:"errors"`
}

func (e *ErrorResponse) message() string {
	if len(e.Errors) == 0 {
		return defaultRejection
	}
	if e.Errors[0].Detail != "" {
		return e.Errors[0].Detail
	}
	if e.Errors[0].Title != "" {
		return e.Errors[0].Title
	}
	return defaultRejection
}

// ResolveAccountNumber looks up the registered holder of accountNumber at bankCode.
// A 4xx answer is a rejection and comes back as *domain.ResolutionError;
// transport failures and 5xx answers are plain errors.
func (c *Client) ResolveAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error) {
	endpoint := fmt.Sprintf("%s/api/v1/payments/verify-account/%s/%s",
		c.baseURL, url.PathEscape(bankCode), url.PathEscape(accountNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create resolver request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolver request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read resolver response: %w", err)
	}

	c.log.Debug().
		Str("bank_code", bankCode).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Account resolution completed")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, &domain.ResolutionError{Message: defaultRejection}
		}
		return nil, &domain.ResolutionError{Message: errResp.message()}
	default:
		return nil, fmt.Errorf("resolver returned status %d", resp.StatusCode)
	}

	var out verifyAccountResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode resolver response: %w", err)
	}
	if out.Data.Attributes.AccountName == "" {
		return nil, &domain.ResolutionError{Message: defaultRejection}
	}
	return &domain.ResolvedAccount{
		AccountName: out.Data.Attributes.AccountName,
		BankID:      out.Data.Attributes.Bank.ID,
	}, nil
}
