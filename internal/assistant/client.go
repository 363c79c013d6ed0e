package assistant

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jacksoncartel/legends-backend/internal/goroutine"
	"github.com/jacksoncartel/legends-backend/internal/logger"
)

// systemPrompt задаёт роль консьержа промо-сайта.
const systemPrompt = "You are the JacksonCartel site concierge. Answer briefly and help visitors choose a collaboration goal."

// Client общается с OpenAI-совместимым API сайта-консьержа.
// Ядро реестра не отвечает за содержание диалога и никогда не
// блокируется на ответе: чанки читаются фоновой горутиной.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient создаёт экземпляр клиента.
func NewClient(baseURL, model string) *Client {
	apiKey := os.Getenv("AI_API_KEY")

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SendMessage отправляет сообщение и возвращает канал текстовых
// чанков ответа. Канал закрывается по окончании стрима или при
// отмене контекста.
func (c *Client) SendMessage(ctx context.Context, text string) (<-chan string, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("assistant: baseURL не задан")
	}

	payload := map[string]any{
		"model":  c.model,
		"stream": true,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": text},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.baseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		var errorBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errorBody)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("assistant: код ответа %d: %v", resp.StatusCode, errorBody)
	}

	out := make(chan string)
	goroutine.SafeGo(func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				if data == "[DONE]" {
					return
				}
				continue
			}

			var chunk struct {
				Choices []struct {
					Delta struct {
						Content string `json:"content"`
					} `json:"delta"`
				} `json:"choices"`
			}
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				if logger.Log != nil {
					logger.Log.WithError(err).Debug("assistant: пропущен нечитаемый чанк")
				}
				continue
			}
			for _, choice := range chunk.Choices {
				if choice.Delta.Content == "" {
					continue
				}
				select {
				case out <- choice.Delta.Content:
				case <-ctx.Done():
					return
				}
			}
		}
	})

	return out, nil
}
