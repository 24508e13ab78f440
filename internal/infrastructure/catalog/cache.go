package catalog

import (
	"sync"
	"time"

	"bookreview/internal/domain/entity"
)

// BookCache menyimpan hasil fetch "all books" di memory. TTL 0 berarti
// entry hidup selama proses (tidak pernah expired); Clear untuk
// invalidasi manual, terutama dari test.
type BookCache struct {
	mu        sync.RWMutex
	books     []entity.Book
	fetchedAt time.Time
	ttl       time.Duration
}

func NewBookCache(ttl time.Duration) *BookCache {
	return &BookCache{
		ttl: ttl,
	}
}

func (c *BookCache) Get() ([]entity.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// List kosong tidak dianggap cache hit, mengikuti perilaku lama
	if len(c.books) == 0 {
		return nil, false
	}

	if c.ttl > 0 && time.Since(c.fetchedAt) > c.ttl {
		return nil, false
	}

	// Copy supaya caller yang mengubah hasilnya tidak merusak entry
	books := make([]entity.Book, len(c.books))
	copy(books, c.books)
	return books, true
}

func (c *BookCache) Set(books []entity.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = append([]entity.Book(nil), books...)
	c.fetchedAt = time.Now()
}

func (c *BookCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = nil
	c.fetchedAt = time.Time{}
}
