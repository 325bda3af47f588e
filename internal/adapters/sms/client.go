package sms

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pianostudio/internal/domain"
)

// SMS providers.
const (
	ProviderSENS = "sens"
	ProviderNoop = "noop"
)

const defaultBaseURL = "https://sens.apigw.ntruss.com"

// Config holds configuration for creating an SMS sender.
type Config struct {
	Provider   string
	ServiceID  string
	AccessKey  string
	SecretKey  string
	FromNumber string
	// BaseURL overrides the SENS endpoint; empty uses the public API gateway.
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

// NewSender creates an SMS sender from config. Provider "sens" uses Naver Cloud SENS; anything else logs only.
func NewSender(config Config) (domain.SMSSender, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "sms")

	if config.Provider != ProviderSENS {
		if config.Provider != ProviderNoop && config.Provider != "" {
			logger.Warn("unknown sms provider, using noop", "provider", config.Provider)
		}
		return &noopSender{logger: logger}, nil
	}
	if config.ServiceID == "" || config.AccessKey == "" || config.SecretKey == "" || config.FromNumber == "" {
		return nil, fmt.Errorf("sens sender: service id, access key, secret key and from number are required")
	}
	client := config.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &sensSender{
		client:     client,
		baseURL:    baseURL,
		serviceID:  config.ServiceID,
		accessKey:  config.AccessKey,
		secretKey:  config.SecretKey,
		fromNumber: domain.DigitsOnly(config.FromNumber),
		now:        time.Now,
		logger:     logger,
	}, nil
}

type sensSender struct {
	client     *http.Client
	baseURL    string
	serviceID  string
	accessKey  string
	secretKey  string
	fromNumber string
	now        func() time.Time
	logger     *slog.Logger
}

type sensMessage struct {
	To string `json:"to"`
}

type sensRequest struct {
	Type        string        `json:"type"`
	ContentType string        `json:"contentType"`
	CountryCode string        `json:"countryCode"`
	From        string        `json:"from"`
	Content     string        `json:"content"`
	Messages    []sensMessage `json:"messages"`
}

type sensResponse struct {
	RequestID  string `json:"requestId"`
	StatusCode string `json:"statusCode"`
	StatusName string `json:"statusName"`
}

// sign returns the base64 HMAC-SHA256 of "METHOD URI\nTIMESTAMP\nACCESSKEY".
func sign(secretKey, method, uri, timestamp, accessKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(method + " " + uri + "\n" + timestamp + "\n" + accessKey))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *sensSender) Send(ctx context.Context, to, message string) error {
	to = domain.DigitsOnly(to)
	if to == "" {
		return fmt.Errorf("send sms: empty recipient")
	}
	// Long bodies go out as LMS.
	msgType := "SMS"
	if len([]byte(message)) > 90 {
		msgType = "LMS"
	}
	body, err := json.Marshal(sensRequest{
		Type:        msgType,
		ContentType: "COMM",
		CountryCode: "82",
		From:        s.fromNumber,
		Content:     message,
		Messages:    []sensMessage{{To: to}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode sms request: %w", err)
	}

	uri := fmt.Sprintf("/sms/v2/services/%s/messages", s.serviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("x-ncp-apigw-timestamp", timestamp)
	req.Header.Set("x-ncp-iam-access-key", s.accessKey)
	req.Header.Set("x-ncp-apigw-signature-v2", sign(s.secretKey, http.MethodPost, uri, timestamp, s.accessKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sens: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sens api returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var out sensResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode sens response: %w", err)
	}
	s.logger.InfoContext(ctx, "sms sent", "to", to, "request_id", out.RequestID, "type", msgType)
	return nil
}

type noopSender struct {
	logger *slog.Logger
}

func (n *noopSender) Send(ctx context.Context, to, message string) error {
	n.logger.InfoContext(ctx, "sms not sent (noop)", "to", to, "length", len(message))
	return nil
}
