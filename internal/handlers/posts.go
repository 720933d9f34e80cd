package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/service"
)

type PostHandler struct {
	feed  *service.FeedService
	posts *service.PostService
}

// Feed handles GET /api/posts. All filters are optional and combine with
// AND semantics: author, no_author, followed, liked, page.
func (h *PostHandler) Feed(c *gin.Context) {
	filter := models.PostFilter{
		Author:   intQuery(c, "author"),
		NoAuthor: intQuery(c, "no_author"),
		Followed: intQuery(c, "followed"),
		Liked:    intQuery(c, "liked"),
		Page:     intQuery(c, "page"),
	}

	page, err := h.feed.Feed(filter)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "OK", page)
}

// Get handles GET /api/post/:id. Note that reading a post increments its
// view counter.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.feed.Get(id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "OK", post)
}

// Create handles POST /api/post.
func (h *PostHandler) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	id, err := h.posts.Create(callerID(c), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusCreated, "Post was created successfully", gin.H{"id": id})
}

// Edit handles PATCH /api/post/:id.
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	changes, err := h.posts.Edit(id, req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Post was edited successfully", changes)
}

// Delete handles DELETE /api/post/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Post was deleted successfully", gin.H{})
}

func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
