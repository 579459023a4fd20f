package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
)

type mockArticleRepo struct {
	articles []citydesk.Article
	replaced []citydesk.Article
	listErr  error
}

func (m *mockArticleRepo) GetByKey(ctx context.Context, key string) (citydesk.Article, error) {
	for _, a := range m.articles {
		if a.Key == key {
			return a, nil
		}
	}
	return citydesk.Article{}, domain.NotFoundError{Resource: "article"}
}

func (m *mockArticleRepo) ListAll(ctx context.Context) ([]citydesk.Article, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.articles, nil
}

func (m *mockArticleRepo) ReplaceAll(ctx context.Context, articles []citydesk.Article) error {
	m.replaced = articles
	m.articles = articles
	return nil
}

type mockPublisher struct {
	events []citydesk.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event citydesk.Event) error {
	m.events = append(m.events, event)
	return nil
}

func TestArticleGetBySlug(t *testing.T) {
	repo := &mockArticleRepo{articles: []citydesk.Article{
		{Key: "first.html", Title: "Breaking: News, At 11"},
		{Key: "second.html", Title: "Another Story"},
	}}
	uc := NewArticleUsecase(repo, nil)

	got, err := uc.GetBySlug(context.Background(), "another-story")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Key != "second.html" {
		t.Fatalf("expected second.html, got %s", got.Key)
	}
}

func TestArticleGetBySlugFirstMatchWins(t *testing.T) {
	repo := &mockArticleRepo{articles: []citydesk.Article{
		{Key: "a.html", Title: "Same Title"},
		{Key: "b.html", Title: "Same! Title?"},
	}}
	uc := NewArticleUsecase(repo, nil)

	got, err := uc.GetBySlug(context.Background(), "same-title")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Key != "a.html" {
		t.Fatalf("collision should resolve to first match, got %s", got.Key)
	}
}

func TestArticleGetBySlugAbsent(t *testing.T) {
	uc := NewArticleUsecase(&mockArticleRepo{}, nil)

	_, err := uc.GetBySlug(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestArticleReplaceAllOverwrites(t *testing.T) {
	repo := &mockArticleRepo{articles: []citydesk.Article{
		{Key: "old.html", Title: "Old"},
	}}
	pub := &mockPublisher{}
	uc := NewArticleUsecase(repo, pub)

	err := uc.ReplaceAll(context.Background(), []citydesk.Article{{Title: "A"}})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if len(repo.replaced) != 1 {
		t.Fatalf("expected 1 article after replace, got %d", len(repo.replaced))
	}
	if repo.replaced[0].Key != "a.html" {
		t.Fatalf("expected derived key a.html, got %s", repo.replaced[0].Key)
	}

	index, err := uc.Index(context.Background())
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if len(index) != 1 || index[0].Title != "A" {
		t.Fatalf("index should reflect the new set, got %+v", index)
	}

	if len(pub.events) != 1 || pub.events[0].Collection != domain.CollectionArticles {
		t.Fatalf("expected one articles change event, got %+v", pub.events)
	}
}

func TestArticleIndexMemoized(t *testing.T) {
	repo := &mockArticleRepo{articles: []citydesk.Article{
		{Key: "a.html", Title: "A", PublishedDate: "2024-01-01"},
	}}
	uc := NewArticleUsecase(repo, nil)

	first, err := uc.Index(context.Background())
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}

	// A later store fault must not surface while the memo is warm.
	repo.listErr = domain.StoreError{Op: "list articles"}
	second, err := uc.Index(context.Background())
	if err != nil {
		t.Fatalf("memoized index failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("memoized index diverged")
	}
}

func TestArticleIndexSummaryShape(t *testing.T) {
	repo := &mockArticleRepo{articles: []citydesk.Article{
		{Key: "a.html", Title: "A", Excerpt: "short", PublishedDate: "2024-01-01"},
	}}
	uc := NewArticleUsecase(repo, nil)

	index, err := uc.Index(context.Background())
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if index[0].URL != "/api/articles/a.html" {
		t.Fatalf("unexpected summary url %s", index[0].URL)
	}
}
