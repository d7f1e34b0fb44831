package models

import "time"

// Team groups students for a competition event. Members always includes the
// leader. TeamCode is a short unique uppercase code other students use to join.
type Team struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	LeaderID  string     `json:"leader_id"`
	EventID   string     `json:"event_id"`
	Members   []string   `json:"members"`
	Status    TeamStatus `json:"status"`
	TeamCode  string     `json:"team_code"`
	CreatedAt time.Time  `json:"created_at"`
}

// HasMember reports whether the given user belongs to the team.
func (t *Team) HasMember(userID string) bool {
	for _, id := range t.Members {
		if id == userID {
			return true
		}
	}
	return false
}
