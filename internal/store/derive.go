package store

import (
	"time"

	"pmdash/internal/model"
	"pmdash/pkg/metrics"
)

// DeriveMilestoneStatus 마일스톤을 참조하는 태스크들로부터 상태를 계산한다.
// 우선순위는 엄격한 단계식이다: 관련 태스크 없음 → 예정, 전부 완료 → 완료,
// 하나라도 진행중 → 진행중, 하나라도 계획 → 계획, 그 외 → 예정.
// 순수 함수이며 같은 태스크 집합에 대해 항상 같은 결과를 낸다.
func DeriveMilestoneStatus(m model.Milestone, tasks []model.Task) model.Status {
	var related []model.Task
	for _, t := range tasks {
		if t.MilestoneID == m.ID {
			related = append(related, t)
		}
	}

	if len(related) == 0 {
		return model.StatusPending
	}

	allDone := true
	for _, t := range related {
		if t.Status != model.StatusDone {
			allDone = false
			break
		}
	}
	if allDone {
		return model.StatusDone
	}

	for _, t := range related {
		if t.Status == model.StatusInProgress {
			return model.StatusInProgress
		}
	}

	for _, t := range related {
		if t.Status == model.StatusPlanned {
			return model.StatusPlanned
		}
	}

	return model.StatusPending
}

// deriveAllLocked 전체 마일스톤의 상태를 다시 계산한다. 태스크 컬렉션이
// 바뀔 때마다 변경된 태스크와 무관하게 전부 다시 돈다. 한 번의 파생 패스가
// 싸기 때문에 불변식을 단순하게 유지하는 쪽을 택했다.
// 하나라도 바뀌었으면 true 를 돌려준다.
func (s *Store) deriveAllLocked() bool {
	start := time.Now()
	changed := false
	for i := range s.milestones {
		next := DeriveMilestoneStatus(s.milestones[i], s.tasks)
		if s.milestones[i].Status != next {
			s.milestones[i].Status = next
			changed = true
		}
	}
	metrics.RecordDeriveDuration(time.Since(start))
	return changed
}
