// Package notifier предоставляет клиент отправки почтовых уведомлений через SendGrid.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client инкапсулирует HTTP-взаимодействие с почтовым транспортом.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient создаёт почтовый клиент с указанным адресом API, ключом и адресом отправителя.
func NewClient(baseURL, apiKey, from string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		from:    from,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To      []address `json:"to"`
	Subject string    `json:"subject"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Content          []content         `json:"content"`
}

// Send отправляет письмо указанному получателю. Возвращаемая ошибка означает
// лишь то, что транспорт не принял письмо, а не отсутствие доставки.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if c == nil || c.apiKey == "" {
		return fmt.Errorf("mail client not configured")
	}

	payload := mailRequest{
		Personalizations: []personalization{
			{
				To:      []address{{Email: to}},
				Subject: subject,
			},
		},
		From: address{Email: c.from},
		Content: []content{
			{Type: "text/html", Value: htmlBody},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}

	url := c.baseURL + "/v3/mail/send"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}
