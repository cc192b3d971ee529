//go:generate go run go.uber.org/mock/mockgen -source=news.go -destination=../mocks/mock_news_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"groupwarden/domain"

	"github.com/goccy/go-json"
)

const (
	defaultNewsBaseURL = "https://newsapi.org/v2"
	newsHeader         = "📰 Today's Top News:\n\n"
	newsFailureText    = "❌ Failed to fetch news updates."
	headlineCount      = 3
)

type INewsService interface {
	TopHeadlines(ctx context.Context, chatID int64) domain.Action
}

// NewsService handles the /news command against the newsapi.org
// top-headlines endpoint. A fetch failure is reported to the chat, never to
// the caller: news is a convenience, not part of moderation.
type NewsService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *slog.Logger
}

func NewNewsService(client *http.Client, apiKey string, log *slog.Logger) *NewsService {
	if client == nil {
		client = http.DefaultClient
	}
	return &NewsService{client: client, baseURL: defaultNewsBaseURL, apiKey: apiKey, log: log}
}

// WithBaseURL points the service at another endpoint. Test seam.
func (s *NewsService) WithBaseURL(baseURL string) *NewsService {
	s.baseURL = baseURL
	return s
}

type headlinesResponse struct {
	Articles []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"articles"`
}

func (s *NewsService) TopHeadlines(ctx context.Context, chatID int64) domain.Action {
	text, err := s.fetch(ctx)
	if err != nil {
		s.log.Error("Headline fetch failed", "error", err)
		return domain.SendMessage{ChatID: chatID, Text: newsFailureText}
	}
	return domain.SendMessage{ChatID: chatID, Text: text}
}

func (s *NewsService) fetch(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/top-headlines?%s", s.baseURL, url.Values{
		"country": {"us"},
		"apiKey":  {s.apiKey},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Articles) == 0 {
		return "", fmt.Errorf("no articles returned")
	}

	articles := payload.Articles
	if len(articles) > headlineCount {
		articles = articles[:headlineCount]
	}

	var b strings.Builder
	b.WriteString(newsHeader)
	for i, article := range articles {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, article.Title, article.URL)
	}
	return b.String(), nil
}
