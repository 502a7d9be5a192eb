package store

import "pmdash/internal/model"

// OrphanReport 참조 무결성이 깨진 레코드 목록. 삭제는 연쇄되지 않고
// 쓰기도 거부되지 않으므로(고아 허용 정책), 불일치는 여기서만 드러난다.
type OrphanReport struct {
	// Tasks 존재하지 않는 프로젝트를 참조하는 태스크
	Tasks []model.Task `json:"tasks"`
	// Milestones 존재하지 않는 프로젝트를 참조하는 마일스톤
	Milestones []model.Milestone `json:"milestones"`
	// Deliverables 존재하지 않는 프로젝트를 참조하는 산출물
	Deliverables []model.Deliverable `json:"deliverables"`
	// UnknownAssignees 어느 팀원 이름과도 일치하지 않는 assignee 값
	UnknownAssignees []string `json:"unknownAssignees"`
}

// Orphans 현재 컬렉션을 훑어 고아 레코드를 보고한다.
func (s *Store) Orphans() OrphanReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectNames := make(map[string]bool, len(s.projects))
	for _, p := range s.projects {
		projectNames[p.Name] = true
	}
	memberNames := make(map[string]bool, len(s.members))
	for _, m := range s.members {
		memberNames[m.Name] = true
	}

	var report OrphanReport
	for _, t := range s.tasks {
		if t.Project != "" && !projectNames[t.Project] {
			report.Tasks = append(report.Tasks, t)
		}
	}
	for _, m := range s.milestones {
		if m.Project != "" && !projectNames[m.Project] {
			report.Milestones = append(report.Milestones, m)
		}
	}
	for _, d := range s.deliverables {
		if d.Project != "" && !projectNames[d.Project] {
			report.Deliverables = append(report.Deliverables, d)
		}
	}

	seen := make(map[string]bool)
	collect := func(assignee string) {
		if assignee != "" && !memberNames[assignee] && !seen[assignee] {
			seen[assignee] = true
			report.UnknownAssignees = append(report.UnknownAssignees, assignee)
		}
	}
	for _, p := range s.projects {
		collect(p.Assignee)
	}
	for _, t := range s.tasks {
		collect(t.Assignee)
	}
	return report
}
