package dto

// BulkDeleteRequest carries the ids targeted by a bulk delete
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse reports how many records were actually deleted
type BulkDeleteResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
