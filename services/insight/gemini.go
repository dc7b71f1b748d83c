package insightsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"eduquest/core"
)

var generatePath = "/v1beta/models/%s:generateContent"

type (
	geminiService struct {
		client  *http.Client
		apiKey  string
		model   string
		baseURL string
		logger  core.Logger
	}

	generateRequest struct {
		Contents         []reqContent     `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}

	reqContent struct {
		Parts []reqPart `json:"parts"`
	}

	reqPart struct {
		Text string `json:"text"`
	}

	generationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	}

	generateResponse struct {
		Candidates []struct {
			Content reqContent `json:"content"`
		} `json:"candidates"`
	}
)

var _ core.InsightService = (*geminiService)(nil)

func NewGeminiService(conf *core.Config, logger core.Logger) *geminiService {
	return &geminiService{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  conf.Gemini.APIKey,
		model:   conf.Gemini.Model,
		baseURL: conf.Gemini.BaseURL,
		logger:  logger,
	}
}

func (svc *geminiService) DraftGradeComment(ctx context.Context, studentName, subject string, grade int) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, encouraging teacher comment for a student named %s who received a grade of %d/5 in %s. "+
			"Be professional and concise.",
		studentName, grade, subject,
	)
	return svc.generate(ctx, prompt, generationConfig{Temperature: 0.7, MaxOutputTokens: 100}, core.FallbackGradeComment)
}

func (svc *geminiService) AnalyzeStats(ctx context.Context, stats interface{}) (string, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("encoding stats payload: %v", err), err)
		return core.FallbackStatsInsight, nil
	}
	prompt := fmt.Sprintf(
		"Analyze these school performance statistics: %s. Provide 3 actionable insights for the principal.",
		data,
	)
	return svc.generate(ctx, prompt, generationConfig{Temperature: 0.5, MaxOutputTokens: 300}, core.FallbackStatsInsight)
}

// generate runs a single generateContent call. Provider failures and empty
// responses surface `fallback` with a nil error; only a cancelled context
// returns an error.
func (svc *geminiService) generate(ctx context.Context, prompt string, cfg generationConfig, fallback string) (string, error) {
	text, err := svc.call(ctx, prompt, cfg)
	if err != nil {
		if ctx.Err() != nil {
			// navigation away cancelled the request; drop the response
			return "", ctx.Err()
		}
		svc.logger.Error(fmt.Sprintf("insight generation failed: %v", err), err)
		return fallback, nil
	}
	if text = strings.TrimSpace(text); text == "" {
		return fallback, nil
	}
	return text, nil
}

func (svc *geminiService) call(ctx context.Context, prompt string, cfg generationConfig) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []reqContent{{Parts: []reqPart{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", errors.Wrap(err, "encoding request")
	}

	url := svc.baseURL + fmt.Sprintf(generatePath, svc.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", svc.apiKey)

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling provider")
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		data, _ := ioutil.ReadAll(res.Body)
		return "", errors.Errorf("provider status %d: %s", res.StatusCode, data)
	}

	var parsed generateResponse
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "decoding response")
	}
	if len(parsed.Candidates) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
