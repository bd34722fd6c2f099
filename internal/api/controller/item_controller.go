package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/response"
	"github.com/helix90/list-handler/internal/api/service"
	"github.com/helix90/list-handler/internal/auth"
)

// ItemController handles item requests within a list.
type ItemController struct {
	itemService service.ItemService
}

// NewItemController creates a new ItemController.
func NewItemController(itemService service.ItemService) *ItemController {
	return &ItemController{itemService: itemService}
}

// GetAll returns every item in the list, in insertion order.
func (ic *ItemController) GetAll(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}

	items, err := ic.itemService.GetAll(c.Request.Context(), auth.Principal(c).ID, listID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create adds an item to the list.
func (ic *ItemController) Create(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}

	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := ic.itemService.Add(c.Request.Context(), auth.Principal(c).ID, listID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update applies a partial update to an item.
func (ic *ItemController) Update(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := ic.itemService.Update(c.Request.Context(), auth.Principal(c).ID, listID, itemID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete removes an item from the list.
func (ic *ItemController) Delete(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := ic.itemService.Delete(c.Request.Context(), auth.Principal(c).ID, listID, itemID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Toggle flips the item's completion flag. No request body.
func (ic *ItemController) Toggle(c *gin.Context) {
	listID, ok := pathID(c, "listId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	item, err := ic.itemService.Toggle(c.Request.Context(), auth.Principal(c).ID, listID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}
