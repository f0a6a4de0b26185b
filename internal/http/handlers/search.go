package handlers

import "net/http"

// Search runs the query against the search index. Index failures degrade to
// empty results rather than an error page.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSON(w, http.StatusOK, h.search.Search(r.Context(), query), h.logger)
}
