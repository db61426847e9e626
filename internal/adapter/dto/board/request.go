package board

// TasksQuery selects which tasks to return from a board view
type TasksQuery struct {
	BoardID string `query:"board_id" validate:"required"`
	Filter  string `query:"filter" validate:"omitempty,taskfilter"`
}

// RefreshRequest forces a re-sync of the board view
type RefreshRequest struct {
	BoardID string `json:"board_id" validate:"required"`
}

// ToggleTaskRequest flips one task between open and done
type ToggleTaskRequest struct {
	BoardID string `json:"board_id" validate:"required"`
	TaskID  string `json:"task_id" validate:"required"`
}

// CreateTaskRequest files a new card on a named list
type CreateTaskRequest struct {
	BoardID     string `json:"board_id" validate:"required"`
	ListName    string `json:"list_name" validate:"required"`
	Title       string `json:"title" validate:"required,max=500"`
	Description string `json:"description,omitempty"`
}

// AssignTaskRequest carries a free-form assignment command for the
// admin surface, e.g. "assign writing the report to Sam by Friday"
type AssignTaskRequest struct {
	BoardID string `json:"board_id" validate:"required"`
	Command string `json:"command" validate:"required"`
}
