package document

// QueryRequest is a natural-language question over the user's sources
type QueryRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}
