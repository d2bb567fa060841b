package menu

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// List menu, optionally filtered by ?category=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	categories := h.catalog.Categories()
	category, ok := MatchCategory(c.Query("category"), categories)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	items := h.catalog.Filter(category)
	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":     categories,
		"activeCategory": category,
		"items":          items,
	})
}

// --------------------------------------------------
// Single menu item
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, ok := h.catalog.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}
