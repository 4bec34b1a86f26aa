package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Письмо для почтового релея
type Message struct {
	Subject   string            `json:"subject"`
	Recipient string            `json:"recipient"`
	Body      string            `json:"body"`
	Variables map[string]string `json:"variables,omitempty"`
}

type Mailer struct {
	url    string
	client *http.Client
}

func NewMailer() (*Mailer, error) {
	// config
	url := os.Getenv("MAIL_RELAY_URL")
	if url == "" {
		return nil, fmt.Errorf("env MAIL_RELAY_URL is not set")
	}
	return &Mailer{url, &http.Client{Timeout: 10 * time.Second}}, nil
}

// Подстановка {{token}} в шаблон
func Render(template string, vars map[string]string) string {
	body := template
	for k, v := range vars {
		body = strings.ReplaceAll(body, "{{"+k+"}}", v)
	}
	return body
}

// Отправка через релей: один POST, ответ не 2xx - ошибка
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail relay HTTP error: %s", resp.Status)
	}
	return nil
}
