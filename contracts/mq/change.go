package mq

// ChangeEvent 컬렉션 변경 이벤트 페이로드.
// 라우팅 키는 "<collection>.<action>" (예: task.created, project.deleted).
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"` // created / updated / deleted
	Key        string `json:"key"`    // 변경된 레코드 식별자
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
