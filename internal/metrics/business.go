package metrics

// PlanningSnapshot is the set of gauges refreshed by the summary job
type PlanningSnapshot struct {
	Goals           int
	Milestones      int
	Tasks           int
	Members         int
	IdeasByStatus   map[string]int
	OverallProgress int
}

// SetPlanningSnapshot replaces the planning gauges
func (m *Metrics) SetPlanningSnapshot(s PlanningSnapshot) {
	m.safeExecute("SetPlanningSnapshot", func() {
		m.GoalsTotal.Set(float64(s.Goals))
		m.MilestonesTotal.Set(float64(s.Milestones))
		m.TasksTotal.Set(float64(s.Tasks))
		m.MembersTotal.Set(float64(s.Members))
		m.OverallProgress.Set(float64(s.OverallProgress))
		m.IdeasByStatus.Reset()
		for status, count := range s.IdeasByStatus {
			m.IdeasByStatus.WithLabelValues(status).Set(float64(count))
		}
	})
}

// IncrementGoalCreated increments goal creation counter
func (m *Metrics) IncrementGoalCreated() {
	m.safeExecute("IncrementGoalCreated", func() {
		m.GoalCreatedTotal.Inc()
	})
}

// IncrementGoalRelocated counts a relocation into bucket
func (m *Metrics) IncrementGoalRelocated(bucket string) {
	m.safeExecute("IncrementGoalRelocated", func() {
		m.GoalRelocatedTotal.WithLabelValues(bucket).Inc()
	})
}

// IncrementIdeaTransition counts an idea entering status
func (m *Metrics) IncrementIdeaTransition(status string) {
	m.safeExecute("IncrementIdeaTransition", func() {
		m.IdeaTransitionsTotal.WithLabelValues(status).Inc()
	})
}

// IncrementProgressEdit counts a timeline progress edit
func (m *Metrics) IncrementProgressEdit(kind string) {
	m.safeExecute("IncrementProgressEdit", func() {
		m.ProgressEditsTotal.WithLabelValues(kind).Inc()
	})
}

// IncrementStoreRefreshFailure counts a failed store reload
func (m *Metrics) IncrementStoreRefreshFailure() {
	m.safeExecute("IncrementStoreRefreshFailure", func() {
		m.StoreRefreshFailures.Inc()
	})
}

// IncrementEventPublishError counts a failed event publish
func (m *Metrics) IncrementEventPublishError(routingKey string) {
	m.safeExecute("IncrementEventPublishError", func() {
		m.EventPublishErrors.WithLabelValues(routingKey).Inc()
	})
}
