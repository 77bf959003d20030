package ai

import "context"

// Message - одно сообщение чат-диалога с моделью.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client - общий интерфейс чат-провайдеров (Gemini, Groq).
// Возвращает текст ответа и сырое тело ответа API для логов.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, []byte, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}
