// Package schedule 스케줄 그리드가 쓰는 연간 주 단위 버킷 계산.
// 주 번호는 ISO 8601 (월요일 시작)을 따른다.
package schedule

import (
	"sort"
	"time"

	"pmdash/internal/model"
)

// WeeksInYear 해당 연도의 주 번호 목록. ISO 기준 52주 또는 53주.
// 12월 28일은 항상 그 해의 마지막 ISO 주에 속한다.
func WeeksInYear(year int) []int {
	_, last := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	weeks := make([]int, last)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks
}

// ProjectActiveInWeek 프로젝트가 해당 연도의 해당 주에 걸쳐 있는지.
// 시작일이나 마감일이 없으면 스케줄에 올리지 않는다.
func ProjectActiveInWeek(p model.Project, week, year int) bool {
	if p.StartDate.IsZero() || p.DueDate.IsZero() {
		return false
	}

	startYear, startWeek := p.StartDate.ISOWeek()
	endYear, endWeek := p.DueDate.ISOWeek()

	switch {
	case startYear == year && endYear == year:
		return week >= startWeek && week <= endWeek
	case startYear == year && endYear > year:
		return week >= startWeek
	case startYear < year && endYear == year:
		return week <= endWeek
	case startYear < year && endYear > year:
		return true
	}
	return false
}

// MemberRow 팀원 한 명의 연간 배치 현황. Weeks[w] 는 해당 주에
// 그 팀원이 담당하는 프로젝트명 목록이다.
type MemberRow struct {
	Member model.TeamMember `json:"member"`
	Weeks  map[int][]string `json:"weeks"`
}

// Grid 연간 스케줄 그리드: 팀원별로 주마다 담당 프로젝트를 모은다.
// 담당 여부는 프로젝트의 assignee 이름과 팀원 이름 일치로 판단한다.
func Grid(projects []model.Project, members []model.TeamMember, year int) []MemberRow {
	rows := make([]MemberRow, 0, len(members))
	for _, member := range members {
		row := MemberRow{Member: member, Weeks: make(map[int][]string)}
		for _, week := range WeeksInYear(year) {
			for _, p := range projects {
				if p.Assignee != member.Name {
					continue
				}
				if ProjectActiveInWeek(p, week, year) {
					row.Weeks[week] = append(row.Weeks[week], p.Name)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// UpcomingMilestones today 기준 30일 안에 도래하는 미완료 마일스톤을
// 날짜순으로 최대 limit 개 돌려준다. 대시보드 요약용.
func UpcomingMilestones(milestones []model.Milestone, today model.Date, limit int) []model.Milestone {
	cutoff := today.AddDays(30)
	var upcoming []model.Milestone
	for _, m := range milestones {
		if m.Status == model.StatusDone || m.Date.IsZero() {
			continue
		}
		if m.Date.Before(today.Time) || m.Date.After(cutoff.Time) {
			continue
		}
		upcoming = append(upcoming, m)
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date.Time)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// StatusCounts 상태별 레코드 수. 대시보드 개요 카드용.
type StatusCounts struct {
	Total      int `json:"total"`
	Planned    int `json:"planned"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Pending    int `json:"pending"`
}

// CountStatuses 상태 열거를 집계한다.
func CountStatuses(statuses []model.Status) StatusCounts {
	counts := StatusCounts{Total: len(statuses)}
	for _, s := range statuses {
		switch s {
		case model.StatusPlanned:
			counts.Planned++
		case model.StatusInProgress:
			counts.InProgress++
		case model.StatusDone:
			counts.Done++
		case model.StatusPending:
			counts.Pending++
		}
	}
	return counts
}
