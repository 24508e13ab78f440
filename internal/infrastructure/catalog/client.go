package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookreview/internal/domain/entity"
	"bookreview/pkg/logger"
)

// Client membungkus API katalog buku eksternal. Seluruh list di-cache
// lewat BookCache; failure transport diteruskan ke caller.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	cache      *BookCache
}

type booksResponse struct {
	Books []entity.Book `json:"books"`
}

type bookResponse struct {
	Book entity.Book `json:"book"`
}

func NewClient(baseURL, authToken string, cache *BookCache) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cache,
	}
}

func (c *Client) ListBooks(ctx context.Context) ([]entity.Book, error) {
	if books, ok := c.cache.Get(); ok {
		return books, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/books", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", c.authToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Catalog request failed: %v", err)
		return nil, fmt.Errorf("failed to fetch books: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Catalog API error: %s", string(body))
		return nil, fmt.Errorf("catalog API error: status %d", resp.StatusCode)
	}

	var booksResp booksResponse
	if err := json.Unmarshal(body, &booksResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	c.cache.Set(booksResp.Books)
	return booksResp.Books, nil
}

// GetBook mengembalikan nil tanpa error kalau buku tidak ditemukan;
// failure lain diteruskan.
func (c *Client) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/books/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", c.authToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Catalog request failed: %v", err)
		return nil, fmt.Errorf("failed to fetch book %s: %v", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Warn("Book %s not found in catalog", id)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Catalog API error: %s", string(body))
		return nil, fmt.Errorf("catalog API error: status %d", resp.StatusCode)
	}

	var bookResp bookResponse
	if err := json.Unmarshal(body, &bookResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	return &bookResp.Book, nil
}

// SearchBooks melakukan substring match case-insensitive di title dan
// authors. Term kosong mengembalikan seluruh list.
func (c *Client) SearchBooks(ctx context.Context, term string) ([]entity.Book, error) {
	allBooks, err := c.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	if term == "" {
		return allBooks, nil
	}

	lowerTerm := strings.ToLower(term)

	var matches []entity.Book
	for _, book := range allBooks {
		if strings.Contains(strings.ToLower(book.Title), lowerTerm) {
			matches = append(matches, book)
			continue
		}
		for _, author := range book.Authors {
			if strings.Contains(strings.ToLower(author), lowerTerm) {
				matches = append(matches, book)
				break
			}
		}
	}

	return matches, nil
}
