package model

// Status 진행 상태. 마일스톤의 status 는 태스크로부터 파생된다.
type Status string

const (
	StatusPending    Status = "예정"
	StatusPlanned    Status = "계획"
	StatusInProgress Status = "진행중"
	StatusDone       Status = "완료"
)

// AuditType 감리 단계
type AuditType string

const (
	AuditRequirement AuditType = "요구정의"
	AuditDesign      AuditType = "설계"
	AuditClosing     AuditType = "종료"
)

// Role 팀원 역할
type Role string

const (
	RoleSenior  Role = "수석"
	RoleRegular Role = "일반"
)

// legacyStatuses 과거 버전이 저장한 상태 표기를 현재 어휘로 치환한다.
// 치환 결과가 다시 치환되는 일은 없으므로 로드 시 무조건 적용해도 안전하다.
var legacyStatuses = map[Status]Status{
	"진행 중": StatusInProgress,
	"보류":   StatusPending,
}

// NormalizeStatus 레거시 상태 값을 현재 어휘로 변환한다. 미지의 값은 그대로 둔다.
func NormalizeStatus(s Status) Status {
	if mapped, ok := legacyStatuses[s]; ok {
		return mapped
	}
	return s
}

// ValidStatus 현재 어휘에 속하는 상태인지 확인한다.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPlanned, StatusInProgress, StatusDone:
		return true
	}
	return false
}
