package query

import "task-service/internal/application/common"

type TaskQueryResult struct {
	Result *common.TaskResult `json:"result"`
}

type TasksQueryResult struct {
	Results []*common.TaskResult `json:"results"`
}

type CategoriesQueryResult struct {
	Results []*common.CategoryResult `json:"results"`
}

type CalendarQueryResult struct {
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	TotalTasks int                  `json:"total_tasks"`
	Tasks      []*common.TaskResult `json:"tasks"`
}
