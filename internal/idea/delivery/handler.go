package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foysalit/codementorx-idea-pool/internal/idea/dto"
	"github.com/foysalit/codementorx-idea-pool/internal/idea/usecase"
	"github.com/foysalit/codementorx-idea-pool/pkg/response"
)

// IdeaHandler handles idea-related HTTP requests
type IdeaHandler struct {
	ideaUsecase usecase.IdeaUsecase
}

// NewIdeaHandler creates a new IdeaHandler
func NewIdeaHandler(ideaUsecase usecase.IdeaUsecase) *IdeaHandler {
	return &IdeaHandler{
		ideaUsecase: ideaUsecase,
	}
}

// List returns one page of ideas, newest first
// GET /ideas?page=N
func (h *IdeaHandler) List(c *gin.Context) {
	var query dto.ListIdeasQuery
	if err := response.BindQuery(c, &query); err != nil {
		response.APIError(c, err)
		return
	}

	page := 1
	if query.Page != nil {
		page = *query.Page
	}

	ideas, err := h.ideaUsecase.List(page)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusOK, dto.NewIdeaListResponse(ideas))
}

// Create persists a new idea
// POST /ideas
func (h *IdeaHandler) Create(c *gin.Context) {
	var req dto.CreateIdeaRequest
	if err := response.BindJSON(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	idea, err := h.ideaUsecase.Create(&req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusCreated, dto.NewIdeaResponse(idea))
}

// Get returns a single idea
// GET /ideas/:ideaId
func (h *IdeaHandler) Get(c *gin.Context) {
	idea, err := h.ideaUsecase.Get(c.Param("ideaId"))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusOK, dto.NewIdeaResponse(idea))
}

// Update merges the provided fields onto an existing idea
// PUT /ideas/:ideaId
func (h *IdeaHandler) Update(c *gin.Context) {
	var req dto.UpdateIdeaRequest
	if err := response.BindJSON(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	idea, err := h.ideaUsecase.Update(c.Param("ideaId"), &req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusOK, dto.NewIdeaResponse(idea))
}

// Remove deletes an idea
// DELETE /ideas/:ideaId
func (h *IdeaHandler) Remove(c *gin.Context) {
	if err := h.ideaUsecase.Remove(c.Param("ideaId")); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusNoContent, nil)
}
