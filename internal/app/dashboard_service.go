package app

import (
	"context"
	"time"

	"fitplan/internal/domain"
)

// Dashboard is everything the home screen shows in one payload.
type Dashboard struct {
	Profile        *domain.Profile      `json:"profile"`
	LatestResult   *domain.QuizResult   `json:"latestResult"`
	RecentLogs     []domain.ProgressLog `json:"recentLogs"`
	TodayLog       *domain.ProgressLog  `json:"todayLog"`
	WeightProgress float64              `json:"weightProgress"`
}

// DashboardService aggregates profile, plan and progress data.
type DashboardService struct {
	profiles domain.ProfileRepository
	results  domain.QuizResultRepository
	progress domain.ProgressRepository
	now      func() time.Time
}

// NewDashboardService creates a DashboardService backed by the given repositories.
func NewDashboardService(pr domain.ProfileRepository, qr domain.QuizResultRepository, lr domain.ProgressRepository) *DashboardService {
	return &DashboardService{profiles: pr, results: qr, progress: lr, now: time.Now}
}

// Get builds the dashboard for the user.
func (s *DashboardService) Get(ctx context.Context, userID int64) (*Dashboard, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.results.LatestQuizResult(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.progress.ListRecentProgressLogs(ctx, userID, defaultRecentLogs)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.ProgressLog{}
	}

	d := &Dashboard{Profile: profile, LatestResult: latest, RecentLogs: logs}

	today := s.now().In(time.Local).Format("2006-01-02")
	for i := range logs {
		if logs[i].LogDate == today {
			d.TodayLog = &logs[i]
			break
		}
	}

	if profile != nil {
		// Only the newest check-in counts; one without a weight means no
		// progress is measured yet.
		var current *float64
		if len(logs) > 0 {
			current = logs[0].WeightKg
		}
		d.WeightProgress = WeightProgress(profile.CurrentWeight, current, profile.TargetWeight)
	}
	return d, nil
}

// WeightProgress is the share of the way from initial to target weight
// already covered, in percent clamped to [0, 100]. It is 0 when the initial
// or target weight is unknown or the two are equal.
func WeightProgress(initial, current, target *float64) float64 {
	if initial == nil || target == nil || *initial == *target {
		return 0
	}
	cur := *initial
	if current != nil {
		cur = *current
	}
	pct := (*initial - cur) / (*initial - *target) * 100
	return min(max(pct, 0), 100)
}
