package api

import (
	"log/slog"
	"net/http"

	"github.com/cobia-app/cobia-api/internal/api/shared"
	"github.com/cobia-app/cobia-api/internal/store"
)

// listItemsResponse is the body for a successful GET /api/list-items/.
type listItemsResponse struct {
	Type      string           `json:"type"`
	Count     int              `json:"count"`
	ListItems []map[string]any `json:"listItems"`
}

// ListItemHandler handles list-item HTTP requests.
type ListItemHandler struct {
	listItems store.ListItemStore
	logger    *slog.Logger
}

// NewListItemHandler creates a new ListItemHandler.
// If logger is nil, a default logger will be used.
func NewListItemHandler(listItems store.ListItemStore, logger *slog.Logger) *ListItemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListItemHandler{
		listItems: listItems,
		logger:    logger.With(slog.String("component", "list_item_handler")),
	}
}

// GetListItems handles GET /api/list-items/ requests. Responds 200 with the
// full collection, or a bare 404 when the collection is empty.
func (h *ListItemHandler) GetListItems(w http.ResponseWriter, r *http.Request) {
	docs, err := h.listItems.FindAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if len(docs) == 0 {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listItemsResponse{
		Type:      "list-items",
		Count:     len(docs),
		ListItems: docs,
	})
}
