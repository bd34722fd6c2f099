package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helix90/list-handler/internal/api/apperrors"
	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/response"
	"github.com/helix90/list-handler/internal/api/service"
	"github.com/helix90/list-handler/internal/auth"
)

// ListController handles list CRUD requests.
type ListController struct {
	listService service.ListService
}

// NewListController creates a new ListController.
func NewListController(listService service.ListService) *ListController {
	return &ListController{listService: listService}
}

// GetAll returns the principal's lists, without items.
func (lc *ListController) GetAll(c *gin.Context) {
	lists, err := lc.listService.GetAll(c.Request.Context(), auth.Principal(c).ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lists)
}

// Create handles list creation.
func (lc *ListController) Create(c *gin.Context) {
	var req models.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	list, err := lc.listService.Create(c.Request.Context(), auth.Principal(c).ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, list)
}

// Get returns one list with all its items.
func (lc *ListController) Get(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}

	list, err := lc.listService.Get(c.Request.Context(), auth.Principal(c).ID, listID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}

// Update applies a partial update to a list.
func (lc *ListController) Update(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}

	var req models.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	list, err := lc.listService.Update(c.Request.Context(), auth.Principal(c).ID, listID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}

// Delete removes a list and all its items.
func (lc *ListController) Delete(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}

	if err := lc.listService.Delete(c.Request.Context(), auth.Principal(c).ID, listID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// pathID parses a numeric path parameter. A value that cannot name any
// resource reports as not found, the same as a missing resource.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, apperrors.ErrNotFound)
		return 0, false
	}
	return id, true
}
