// Package alimtalk delivers confirmation links over NCP SENS KakaoTalk
// notification messages.
package alimtalk

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
	"strings"
	"time"

	"blogpilot/internal/domain"
)

const defaultBaseURL = "https://sens.apigw.ntruss.com"

// Config holds NCP SENS credentials and the Kakao channel identity.
type Config struct {
	BaseURL      string
	AccessKey    string
	SecretKey    string
	ServiceID    string
	ChannelID    string
	InitialCode  string
	ReminderCode string
}

type sender struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the SENS-backed messenger.
func New(cfg Config, logger *slog.Logger) domain.Messenger {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &sender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		now:        time.Now,
	}
}

type message struct {
	To      string   `json:"to"`
	Content string   `json:"content"`
	Buttons []button `json:"buttons,omitempty"`
}

type button struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	LinkMobile string `json:"linkMobile,omitempty"`
	LinkPc     string `json:"linkPc,omitempty"`
}

type sendRequest struct {
	PlusFriendID string    `json:"plusFriendId"`
	TemplateCode string    `json:"templateCode"`
	Messages     []message `json:"messages"`
}

func (s *sender) Send(ctx context.Context, msg *domain.ConfirmMessage) error {
	uri := fmt.Sprintf("/alimtalk/v2/services/%s/messages", s.cfg.ServiceID)

	code := s.cfg.InitialCode
	if msg.Kind == domain.NotificationReminder {
		code = s.cfg.ReminderCode
	}
	payload := sendRequest{
		PlusFriendID: s.cfg.ChannelID,
		TemplateCode: code,
		Messages: []message{{
			To:      normalizePhone(msg.Phone),
			Content: content(msg),
			Buttons: []button{{
				Type:       "WL",
				Name:       "초안 확인하기",
				LinkMobile: msg.ConfirmLink,
				LinkPc:     msg.ConfirmLink,
			}},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alimtalk request: %w", err)
	}

	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build alimtalk request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("x-ncp-apigw-timestamp", timestamp)
	req.Header.Set("x-ncp-iam-access-key", s.cfg.AccessKey)
	req.Header.Set("x-ncp-apigw-signature-v2", sign(s.cfg.SecretKey, http.MethodPost, uri, timestamp, s.cfg.AccessKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call SENS: %w", err)
	}
	defer resp.Body.Close()

	// SENS acknowledges accepted sends with 202.
	if resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("SENS returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	s.logger.Info("alimtalk sent", "customer", msg.CustomerName, "kind", msg.Kind)
	return nil
}

// sign produces the x-ncp-apigw-signature-v2 value: base64 of the
// HMAC-SHA256 over "METHOD uri\ntimestamp\naccessKey".
func sign(secretKey, method, uri, timestamp, accessKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	fmt.Fprintf(mac, "%s %s\n%s\n%s", method, uri, timestamp, accessKey)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// normalizePhone strips the hyphens Korean numbers are usually written with.
func normalizePhone(phone string) string {
	return strings.ReplaceAll(phone, "-", "")
}

func content(msg *domain.ConfirmMessage) string {
	if msg.Kind == domain.NotificationReminder {
		return fmt.Sprintf(
			"%s님, 이번 주 블로그 초안이 아직 선택되지 않았습니다.\n내일까지 선택하지 않으시면 첫 번째 초안이 자동으로 선택됩니다.\n\n%s",
			msg.CustomerName, msg.ConfirmLink,
		)
	}
	return fmt.Sprintf(
		"%s님, 이번 주 블로그 초안이 준비되었습니다.\n링크에서 마음에 드는 글을 선택해 주세요.\n\n%s",
		msg.CustomerName, msg.ConfirmLink,
	)
}
