// Package llm generates weekly blog draft candidates with the OpenAI chat
// completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"blogpilot/internal/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
	draftCount     = 3
)

// Config holds the OpenAI connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type generator struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGenerator creates the OpenAI-backed draft generator.
func NewGenerator(cfg Config, logger *slog.Logger) domain.DraftGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &generator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type draftsPayload struct {
	Drafts []struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		MainKeyword string `json:"main_keyword"`
	} `json:"drafts"`
}

func (g *generator) Generate(ctx context.Context, customer *domain.Customer, excludeTitles []string) ([]domain.DraftCandidate, error) {
	reqBody := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(customer, excludeTitles)},
		},
		Temperature: 0.8,
	}
	reqBody.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call OpenAI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("OpenAI returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if chat.Error != nil {
		return nil, fmt.Errorf("OpenAI error: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI returned no choices")
	}

	var payload draftsPayload
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("parse drafts payload: %w", err)
	}

	candidates := make([]domain.DraftCandidate, 0, len(payload.Drafts))
	for _, d := range payload.Drafts {
		if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Content) == "" {
			continue
		}
		candidates = append(candidates, domain.DraftCandidate{
			Title:       d.Title,
			Content:     d.Content,
			MainKeyword: d.MainKeyword,
		})
	}
	g.logger.Info("drafts generated by model", "customer", customer.Name, "count", len(candidates))
	return candidates, nil
}

const systemPrompt = `당신은 네이버 블로그 마케팅 전문 카피라이터입니다. ` +
	`의뢰받은 업체의 프로필에 맞춰 블로그 글 초안을 작성합니다. ` +
	`반드시 {"drafts":[{"title":"...","content":"...","main_keyword":"..."}]} 형태의 JSON으로만 답하세요.`

func buildPrompt(c *domain.Customer, excludeTitles []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "다음 업체의 네이버 블로그 글 초안 %d개를 작성해 주세요.\n\n", draftCount)
	fmt.Fprintf(&b, "업체명: %s\n", c.Name)
	writeField(&b, "업종", c.BusinessType)
	writeList(&b, "주요 키워드", c.Keywords)
	writeField(&b, "글의 톤", c.Tone)
	writeField(&b, "전문 분야", c.Specialty)
	writeField(&b, "타깃 고객", c.TargetAudience)
	writeField(&b, "브랜드 컨셉", c.BrandConcept)
	writeList(&b, "주요 서비스", c.MainServices)
	writeField(&b, "가격대", c.PriceRange)
	writeField(&b, "위치", c.LocationInfo)
	writeList(&b, "선호 표현", c.PreferredExpressions)
	writeList(&b, "피해야 할 표현", c.AvoidedExpressions)
	if c.SampleContent != "" {
		fmt.Fprintf(&b, "\n참고용 기존 글:\n%s\n", c.SampleContent)
	}
	if len(excludeTitles) > 0 {
		b.WriteString("\n최근에 이미 다룬 주제이므로 아래 제목과 겹치지 않게 해주세요:\n")
		for _, title := range excludeTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}
	b.WriteString("\n각 글은 제목, 본문(1500자 내외), 핵심 키워드를 포함해야 합니다.")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) > 0 {
		fmt.Fprintf(b, "%s: %s\n", label, strings.Join(values, ", "))
	}
}
