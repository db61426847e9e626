package meeting

// ListQuery paginates the meeting list
type ListQuery struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// ConvertToTaskRequest turns one action item into a board task
type ConvertToTaskRequest struct {
	Assignee string `json:"assignee" validate:"required"`
	Text     string `json:"text" validate:"required"`
	Deadline string `json:"deadline,omitempty"`
}
