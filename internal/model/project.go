package model

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"` // 프로젝트명, 중복 불가
	StartDate   Date      `json:"startDate"`
	DueDate     Date      `json:"dueDate"`
	Status      Status    `json:"status"`
	Description string    `json:"description"`
	Assignee    string    `json:"assignee"` // 팀원 이름 (자유 입력)
	AuditType   AuditType `json:"auditType"`
}

type Milestone struct {
	ID          int    `json:"id"`
	Project     string `json:"project"` // 프로젝트명 참조
	Name        string `json:"name"`
	Date        Date   `json:"date"`
	Status      Status `json:"status"` // 태스크로부터 파생, 직접 수정해도 다음 파생 때 덮어쓴다
	Description string `json:"description"`
}

type Deliverable struct {
	ID          string `json:"id"`
	Project     string `json:"project"`
	Name        string `json:"name"`
	Date        Date   `json:"date"`
	Status      Status `json:"status"`
	Description string `json:"description"`
}
