package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/internal/ai"
)

// ExtractFields implements ai.Extractor using text-only chat/completions.
// The whole document goes out in one call; per-field calls would multiply
// cost and latency for no accuracy gain.
func (c *Client) ExtractFields(ctx context.Context, req ai.Request) (ai.Response, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("ai.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"document_id", req.DocumentID,
		"text_len", len(req.DocumentText),
		"target_fields", len(req.TargetFields),
		"include_narrative", req.IncludeNarrative,
		"force", req.ForceAI,
	)

	schema := ai.BuildProfileJSONSchema(targetFieldsFor(req))
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req)},
			{"role": "user", "content": buildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("ai.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ai.Response{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("ai.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ai.Response{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("ai.extract.no_choices", "req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ai.Response{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := ai.ValidateJSONAgainstSchema(schema, content); err != nil {
		if !c.cfg.Lenient {
			c.logger.Error("ai.extract.schema_validation_failed",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return ai.Response{}, content, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, dropped, sErr := ai.SanitizeFields(content)
		if sErr != nil {
			c.logger.Error("ai.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return ai.Response{}, content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := ai.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("ai.extract.schema_validation_failed",
				"req_id", rid, "error", vErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return ai.Response{}, content, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("ai.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		content = cleaned
	}

	var fields map[string]any
	if err := json.Unmarshal(content, &fields); err != nil {
		return ai.Response{}, content, fmt.Errorf("decode fields: %w", err)
	}
	confidence := 0.0
	if v, ok := fields["confidence"].(float64); ok {
		confidence = v
		delete(fields, "confidence")
	}

	resp := ai.Response{
		ExtractedFields:  fields,
		Confidence:       confidence,
		Source:           "openai:" + c.cfg.Model,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
	c.logger.Info("ai.extract.done",
		"req_id", rid,
		"fields", len(fields),
		"confidence", confidence,
		"elapsed_ms", resp.ProcessingTimeMs,
	)
	return resp, content, nil
}

func targetFieldsFor(req ai.Request) []string {
	fields := req.TargetFields
	if req.IncludeNarrative {
		fields = appendMissing(fields, "activity_description")
	}
	return fields
}

func appendMissing(fields []string, name string) []string {
	if len(fields) == 0 {
		return fields // empty means full schema, which already covers name
	}
	for _, f := range fields {
		if f == name {
			return fields
		}
	}
	return append(fields, name)
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
