package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/utils"
)

// fakeBlogRepo paginates an in-memory slice with the same window semantics
// as the real listing query.
type fakeBlogRepo struct {
	posts []models.BlogPost
	err   error
}

func (f *fakeBlogRepo) List(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.BlogPost], error) {
	if f.err != nil {
		return pgrepo.Page[models.BlogPost]{}, f.err
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = pgrepo.DefaultPerPage
	}
	start := (p.Page - 1) * p.PerPage
	end := start + p.PerPage
	items := []models.BlogPost{}
	if start < len(f.posts) {
		if end > len(f.posts) {
			end = len(f.posts)
		}
		items = f.posts[start:end]
	}
	return pgrepo.Page[models.BlogPost]{
		Items:      items,
		TotalCount: int64(len(f.posts)),
		Page:       p.Page,
		PerPage:    p.PerPage,
	}, nil
}

func (f *fakeBlogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func seedPosts(n int) []models.BlogPost {
	posts := make([]models.BlogPost, n)
	for i := range posts {
		posts[i] = models.BlogPost{ID: fmt.Sprintf("post-%d", i), Title: fmt.Sprintf("Post %d", i)}
	}
	return posts
}

func TestBlogServiceListWindows(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{posts: seedPosts(13)})

	page1, err := svc.List(context.Background(), pgrepo.ListParams{Page: 1, PerPage: 6})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 6)
	assert.Equal(t, int64(13), page1.TotalCount)
	assert.Equal(t, 3, page1.TotalPages())

	page2, err := svc.List(context.Background(), pgrepo.ListParams{Page: 2, PerPage: 6})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 6)

	page3, err := svc.List(context.Background(), pgrepo.ListParams{Page: 3, PerPage: 6})
	require.NoError(t, err)
	assert.Len(t, page3.Items, 1)
}

func TestBlogServiceListEmptyIsNotAnError(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{})

	page, err := svc.List(context.Background(), pgrepo.ListParams{Page: 1, PerPage: 6})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages())
}

func TestBlogServiceListIdempotent(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{posts: seedPosts(9)})
	params := pgrepo.ListParams{Page: 2, PerPage: 6, Search: "Post"}

	first, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	second, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBlogServiceGet(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{posts: seedPosts(3)})

	post, err := svc.Get(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, "Post 1", post.Title)

	_, err = svc.Get(context.Background(), "nope")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestBlogServiceListFailure(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{err: errors.New("connection refused")})

	_, err := svc.List(context.Background(), pgrepo.ListParams{Page: 1, PerPage: 6})
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}
