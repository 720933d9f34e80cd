package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mkurbatov/social-network-api/internal/apperr"
	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/store"
)

// listTextLimit is the character budget for post text in list results.
// Longer texts are cut and suffixed; single-post reads return full text.
const (
	listTextLimit  = 250
	listTextSuffix = " ..."
)

// FeedService composes the filtered, paginated, sorted view of posts and
// the single-post read.
type FeedService struct {
	posts store.PostStore
	agg   aggregator
	log   *zap.Logger
}

func NewFeedService(posts store.PostStore, likes store.LikeStore, log *zap.Logger) *FeedService {
	return &FeedService{
		posts: posts,
		agg:   aggregator{likes: likes},
		log:   log,
	}
}

// Feed returns one page of aggregated posts matching the filter, most
// recently updated first. A page with zero matching rows is reported as
// NotFound; clients depend on that instead of an empty success.
func (s *FeedService) Feed(filter models.PostFilter) (*models.FeedPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * models.FeedPageSize

	posts, total, err := s.posts.Feed(filter, offset, models.FeedPageSize)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if len(posts) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "Posts not found")
	}

	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		view, err := s.agg.view(&posts[i])
		if err != nil {
			return nil, err
		}
		view.Text = truncateText(view.Text)
		views = append(views, *view)
	}

	lastPage := int((total + models.FeedPageSize - 1) / models.FeedPageSize)
	if lastPage < 1 {
		lastPage = 1
	}

	return &models.FeedPage{
		CurrentPage: page,
		Data:        views,
		PerPage:     models.FeedPageSize,
		Total:       total,
		LastPage:    lastPage,
	}, nil
}

// Get returns the aggregated post with full text. Reading a post is not
// idempotent: each call increments the view counter by exactly one.
func (s *FeedService) Get(postID int) (*models.PostView, error) {
	post, err := s.posts.ByID(postID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if post == nil {
		return nil, apperr.New(apperr.KindNotFound, "Post not found")
	}

	post.Views++
	if err := s.posts.Update(post); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	return s.agg.view(post)
}

func truncateText(text string) string {
	runes := []rune(text)
	if len(runes) <= listTextLimit {
		return text
	}
	return strings.TrimRight(string(runes[:listTextLimit]), " ") + listTextSuffix
}
