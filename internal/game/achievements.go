package game

import "juicetycoon/internal/models"

// achievementCheck is an unlock predicate evaluated after a successful
// serve, once the serve's points (and any combo bonus) have been
// awarded. The served order is the one that just matched.
type achievementCheck func(s *Session, served models.Order) bool

var achievementChecks = map[string]achievementCheck{
	"first_order": func(s *Session, _ models.Order) bool {
		return s.serveCount == 1
	},
	"score_100": func(s *Session, _ models.Order) bool {
		return s.score >= 100
	},
	"streak_5": func(s *Session, _ models.Order) bool {
		return s.streak >= 5
	},
	"critic_please": func(_ *Session, served models.Order) bool {
		return served.Customer.ID == "critic"
	},
	"combo_king": func(s *Session, _ models.Order) bool {
		return s.comboCount >= 3
	},
}

// evaluateAchievementsLocked walks the achievement catalog in order
// and unlocks every achievement whose predicate holds. Each unlock
// happens at most once per session and adds its reward to the score
// before later predicates are evaluated.
func (s *Session) evaluateAchievementsLocked(served models.Order) {
	for _, a := range s.catalog.Achievements {
		if s.unlocked[a.ID] {
			continue
		}
		check, ok := achievementChecks[a.ID]
		if !ok || !check(s, served) {
			continue
		}
		s.unlocked[a.ID] = true
		s.score += a.RewardPoints
		s.queue(EventAchievementUnlocked, AchievementData{
			AchievementID: a.ID,
			Reward:        a.RewardPoints,
		})
	}
}
