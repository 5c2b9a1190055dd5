package request

// BuildReportRequest selects the requests to summarise; an empty list means
// every request.
type BuildReportRequest struct {
	Title      string   `json:"title" binding:"required"`
	RequestIDs []string `json:"request_ids"`
}
