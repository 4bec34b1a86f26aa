package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Клиент файлового хранилища: PUT в blob-store, публичная ссылка в ответ
type Storage struct {
	url    string // базовый URL хранилища
	public string // базовый URL публичных ссылок
	client *http.Client
}

func NewStorage() (*Storage, error) {
	// config
	url := os.Getenv("STORAGE_URL")
	if url == "" {
		return nil, fmt.Errorf("env STORAGE_URL is not set")
	}
	public := os.Getenv("STORAGE_PUBLIC_URL")
	if public == "" {
		public = url
	}
	return &Storage{
		url:    strings.TrimRight(url, "/"),
		public: strings.TrimRight(public, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *Storage) UploadFile(ctx context.Context, name string, contentType string, data []byte) (url string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url+"/"+name, bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("storage HTTP error: %s", resp.Status)
	}
	return s.GetPublicURL(name), nil
}

func (s *Storage) GetPublicURL(key string) string {
	return s.public + "/" + key
}
