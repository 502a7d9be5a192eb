package model

type Task struct {
	ID          int    `json:"id"`
	Name        string `json:"name"` // 감리 점검 항목명
	Project     string `json:"project"`
	DueDate     Date   `json:"dueDate"`
	Status      Status `json:"status"`
	Assignee    string `json:"assignee"`
	Description string `json:"description"`
	MilestoneID int    `json:"milestoneId,omitempty"` // 0 이면 미연결
}
