package store

import (
	"time"

	"github.com/google/uuid"

	"pmdash/internal/model"
)

// demoMilestoneProject / demoMilestoneName 로드할 때마다 날짜를 오늘+15일로
// 다시 맞추는 데모 마일스톤. 항상 "다가오는 마일스톤" 목록에 나타난다.
const (
	demoMilestoneProject = "프로젝트 F"
	demoMilestoneName    = "시장 분석 보고서"
)

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err) // seed 데이터 오탈자는 개발 중에 바로 잡는다
	}
	return d
}

// seedProjects 초기 프로젝트. startDate 는 비워 두고 로드 시 합성한다.
func seedProjects() []model.Project {
	return []model.Project{
		{ID: uuid.NewString(), Name: "프로젝트 A", DueDate: date("2025-12-31"), Status: model.StatusInProgress, Description: "웹 애플리케이션 개발", Assignee: "고재환", AuditType: model.AuditDesign},
		{ID: uuid.NewString(), Name: "프로젝트 B", DueDate: date("2025-06-30"), Status: model.StatusPlanned, Description: "모바일 앱 런칭", Assignee: "김기홍", AuditType: model.AuditRequirement},
		{ID: uuid.NewString(), Name: "프로젝트 C", DueDate: date("2025-09-15"), Status: model.StatusInProgress, Description: "인공지능 분석 시스템 개발", Assignee: "김명현", AuditType: model.AuditDesign},
		{ID: uuid.NewString(), Name: "프로젝트 D", DueDate: date("2026-02-28"), Status: model.StatusPending, Description: "클라우드 서비스 플랫폼 구축", Assignee: "김상협", AuditType: model.AuditRequirement},
		{ID: uuid.NewString(), Name: "프로젝트 E", DueDate: date("2025-03-31"), Status: model.StatusDone, Description: "사내 그룹웨어 마이그레이션", Assignee: "고재환", AuditType: model.AuditClosing},
		{ID: uuid.NewString(), Name: "프로젝트 F", DueDate: date("2026-06-30"), Status: model.StatusPlanned, Description: "새로운 서비스 런칭 준비", Assignee: "김기홍", AuditType: model.AuditRequirement},
		{ID: uuid.NewString(), Name: "프로젝트 G", DueDate: date("2026-08-31"), Status: model.StatusPending, Description: "신규 고객사 온보딩", Assignee: "고재환", AuditType: model.AuditDesign},
		{ID: uuid.NewString(), Name: "프로젝트 H", DueDate: date("2026-04-30"), Status: model.StatusPlanned, Description: "기술 부채 해결", Assignee: "최수석", AuditType: model.AuditClosing},
	}
}

func seedMilestones(now time.Time) []model.Milestone {
	return []model.Milestone{
		{ID: 1, Project: "프로젝트 A", Name: "초기 설계 완료", Date: date("2025-03-01"), Status: model.StatusDone, Description: "시스템 아키텍처 설계"},
		{ID: 2, Project: "프로젝트 A", Name: "프로토타입 개발", Date: date("2025-06-01"), Status: model.StatusInProgress, Description: "UI/UX 프로토타입"},
		{ID: 3, Project: "프로젝트 B", Name: "시장 조사", Date: date("2025-02-15"), Status: model.StatusPlanned, Description: "사용자 요구 분석"},
		{ID: 4, Project: "프로젝트 C", Name: "기술 타당성 분석", Date: date("2025-04-15"), Status: model.StatusDone, Description: "AI 모델 선정 및 타당성 분석"},
		{ID: 5, Project: "프로젝트 A", Name: "베타 버전 개발", Date: date("2025-09-15"), Status: model.StatusPending, Description: "베타 버전 개발 및 테스트"},
		{ID: 6, Project: "프로젝트 C", Name: "알고리즘 구현", Date: date("2025-06-30"), Status: model.StatusInProgress, Description: "기계학습 알고리즘 구현"},
		{ID: 7, Project: "프로젝트 D", Name: "요구사항 정의", Date: date("2025-10-01"), Status: model.StatusPending, Description: "플랫폼 요구사항 정의 및 분석"},
		{ID: 8, Project: "프로젝트 B", Name: "디자인 완료", Date: date("2025-04-30"), Status: model.StatusPlanned, Description: "앱 UI/UX 디자인 완료"},
		{ID: 9, Project: "프로젝트 E", Name: "시스템 마이그레이션", Date: date("2025-02-28"), Status: model.StatusDone, Description: "기존 시스템에서 새로운 시스템으로 마이그레이션"},
		{ID: 10, Project: "프로젝트 E", Name: "사용자 교육", Date: date("2025-03-15"), Status: model.StatusDone, Description: "새로운 시스템 사용법 교육"},
		{ID: 11, Project: "프로젝트 D", Name: "아키텍처 설계", Date: date("2025-12-01"), Status: model.StatusPending, Description: "클라우드 아키텍처 설계 및 검증"},
		{ID: 12, Project: "프로젝트 B", Name: "알파 테스트", Date: date("2025-05-20"), Status: model.StatusInProgress, Description: "내부 알파 테스트 진행"},
		{ID: 13, Project: "프로젝트 A", Name: "UI 개선", Date: date("2025-06-10"), Status: model.StatusPending, Description: "사용자 피드백 기반 UI 개선"},
		{ID: 14, Project: "프로젝트 C", Name: "데이터 전처리", Date: date("2025-05-25"), Status: model.StatusPlanned, Description: "분석용 데이터 전처리"},
		{ID: 15, Project: "프로젝트 B", Name: "QA 리뷰", Date: date("2025-05-18"), Status: model.StatusDone, Description: "QA팀의 최종 리뷰"},
		{ID: 16, Project: "프로젝트 A", Name: "최종 보고서 제출", Date: date("2025-12-19"), Status: model.StatusPending, Description: "프로젝트 최종 보고서 제출"},
		// 데모용: 항상 15일 뒤로 유지되는 마일스톤
		{ID: 17, Project: demoMilestoneProject, Name: demoMilestoneName, Date: model.DateOf(now).AddDays(15), Status: model.StatusPlanned, Description: "신규 서비스 시장 분석 완료"},
	}
}

func seedDeliverables() []model.Deliverable {
	return []model.Deliverable{
		{ID: uuid.NewString(), Project: "프로젝트 A", Name: "설계 문서", Date: date("2025-03-01"), Status: model.StatusDone, Description: "시스템 아키텍처 문서"},
		{ID: uuid.NewString(), Project: "프로젝트 A", Name: "프로토타입 UI", Date: date("2025-06-01"), Status: model.StatusInProgress, Description: "초기 UI 디자인"},
		{ID: uuid.NewString(), Project: "프로젝트 B", Name: "시장 조사 보고서", Date: date("2025-02-15"), Status: model.StatusPending, Description: "사용자 요구사항 보고서"},
	}
}

func seedTasks() []model.Task {
	return []model.Task{
		// 요구정의 단계 감리 점검태스크
		{ID: 1, Name: "과업 및 범위 적정성", Project: "프로젝트 A", DueDate: date("2025-04-15"), Status: model.StatusDone, Assignee: "고재환", Description: "프로젝트 A 과업 및 범위 적정성 감리", MilestoneID: 1},
		{ID: 2, Name: "사업 관리 계획 적정성/실행 가능성", Project: "프로젝트 A", DueDate: date("2025-07-20"), Status: model.StatusInProgress, Assignee: "김기홍", Description: "프로젝트 A 사업 관리 계획 감리", MilestoneID: 2},
		{ID: 3, Name: "요구사항 분석 품질", Project: "프로젝트 B", DueDate: date("2025-03-10"), Status: model.StatusPlanned, Assignee: "김명현", Description: "프로젝트 B 요구사항 분석 품질 감리", MilestoneID: 3},
		{ID: 4, Name: "기술 요소 검토", Project: "프로젝트 A", DueDate: date("2025-05-25"), Status: model.StatusInProgress, Assignee: "김상협", Description: "프로젝트 A 기술 요소 검토 감리", MilestoneID: 1},
		{ID: 5, Name: "위험 및 이슈 관리", Project: "프로젝트 A", DueDate: date("2025-08-15"), Status: model.StatusPending, Assignee: "김선미", Description: "프로젝트 A 위험 및 이슈 관리 감리", MilestoneID: 5},

		// 설계 단계 감리 점검태스크
		{ID: 6, Name: "설계 산출물 품질", Project: "프로젝트 B", DueDate: date("2025-04-01"), Status: model.StatusDone, Assignee: "김연식", Description: "프로젝트 B 설계 산출물 품질 감리", MilestoneID: 3},
		{ID: 7, Name: "시스템 구조 설계", Project: "프로젝트 A", DueDate: date("2025-09-10"), Status: model.StatusPending, Assignee: "김영빈", Description: "프로젝트 A 시스템 구조 설계 감리", MilestoneID: 5},
		{ID: 8, Name: "데이터 설계 품질", Project: "프로젝트 B", DueDate: date("2025-05-30"), Status: model.StatusInProgress, Assignee: "김상현", Description: "프로젝트 B 데이터 설계 품질 감리", MilestoneID: 12},
		{ID: 9, Name: "보안 및 개인정보 보호", Project: "프로젝트 A", DueDate: date("2025-06-15"), Status: model.StatusInProgress, Assignee: "고재환", Description: "프로젝트 A 보안 및 개인정보 보호 감리", MilestoneID: 2},
		{ID: 10, Name: "개발 및 테스트 계획", Project: "프로젝트 B", DueDate: date("2025-02-20"), Status: model.StatusDone, Assignee: "김명현", Description: "프로젝트 B 개발 및 테스트 계획 감리", MilestoneID: 3},

		// 종료 단계 감리 점검태스크
		{ID: 11, Name: "시스템 테스트 및 품질", Project: "프로젝트 A", DueDate: date("2025-07-05"), Status: model.StatusPending, Assignee: "김상협", Description: "프로젝트 A 시스템 테스트 및 품질 감리", MilestoneID: 5},
		{ID: 12, Name: "산출물 및 인수인계", Project: "프로젝트 A", DueDate: date("2025-08-01"), Status: model.StatusPlanned, Assignee: "김기홍", Description: "프로젝트 A 산출물 및 인수인계 감리", MilestoneID: 5},
		{ID: 13, Name: "과업 내용 이행 여부", Project: "프로젝트 C", DueDate: date("2025-09-01"), Status: model.StatusPending, Assignee: "김기홍", Description: "프로젝트 C 과업 내용 이행 여부 감리", MilestoneID: 6},
		{ID: 14, Name: "시스템 운영 준비", Project: "프로젝트 E", DueDate: date("2025-03-20"), Status: model.StatusDone, Assignee: "고재환", Description: "프로젝트 E 시스템 운영 준비 감리", MilestoneID: 9},
		{ID: 15, Name: "시정조치 확인", Project: "프로젝트 E", DueDate: date("2025-03-25"), Status: model.StatusDone, Assignee: "고재환", Description: "프로젝트 E 시정조치 확인 감리", MilestoneID: 10},
	}
}

func seedTeamMembers() []model.TeamMember {
	return []model.TeamMember{
		{ID: "tm1", Name: "고재환", Department: "1카미노감리", Role: model.RoleSenior},
		{ID: "tm2", Name: "김기홍", Department: "1카미노감리", Role: model.RoleSenior},
		{ID: "tm3", Name: "김명현", Department: "1카미노감리", Role: model.RoleRegular},
		{ID: "tm4", Name: "김상현", Department: "1카미노감리", Role: model.RoleRegular},
		{ID: "tm5", Name: "김상협", Department: "1카미노감리", Role: model.RoleSenior},
		{ID: "tm6", Name: "김선미", Department: "1카미노감리", Role: model.RoleSenior},
		{ID: "tm7", Name: "김연식", Department: "1카미노감리", Role: model.RoleSenior},
		{ID: "tm8", Name: "김영빈", Department: "1카미노감리", Role: model.RoleSenior},
		{ID: "tm9", Name: "최수석", Department: "1카미노감리", Role: model.RoleSenior},
	}
}
