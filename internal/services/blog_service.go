package services

import (
	"context"
	"errors"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/utils"
)

type BlogService interface {
	List(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.BlogPost], error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
}

type blogService struct {
	posts pgrepo.BlogRepository
}

func NewBlogService(posts pgrepo.BlogRepository) BlogService {
	return &blogService{posts: posts}
}

func (s *blogService) List(ctx context.Context, p pgrepo.ListParams) (pgrepo.Page[models.BlogPost], error) {
	const op = "BlogService.List"

	page, err := s.posts.List(ctx, p)
	if err != nil {
		return pgrepo.Page[models.BlogPost]{}, utils.E(utils.CodeUnavailable, op, "failed to load blog posts", err)
	}
	return page, nil
}

func (s *blogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	const op = "BlogService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "blog post not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load blog post", err)
	}
	return post, nil
}
