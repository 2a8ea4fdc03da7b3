package models

import "time"

// TeamTask is a task on the shared team board.
type TeamTask struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         Status    `json:"status"`
	Assignee       string    `json:"assignee"`
	AssigneeAvatar string    `json:"assigneeAvatar"`
	Deadline       string    `json:"deadline,omitempty"`
	Labels         []string  `json:"labels"`
	ProjectID      string    `json:"projectId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PersonalTask is a task on the user's private schedule. Order defines
// the manual sort position within the list.
type PersonalTask struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Status        Status    `json:"status"`
	Order         int       `json:"order"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
