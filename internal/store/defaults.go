package store

import (
	"time"

	"github.com/minhtran-dev/deskboard/internal/models"
)

// Built-in default dataset, installed on first launch so the dashboard
// is populated before the user has created anything.

func defaultColumns() []models.ColumnConfig {
	return []models.ColumnConfig{
		{ID: models.StatusTodo, Title: "To Do", Color: "#9ca3af"},
		{ID: models.StatusInProgress, Title: "In Progress", Color: "#3b82f6"},
		{ID: models.StatusUrgent, Title: "High Priority", Color: "#ef4444"},
		{ID: models.StatusDone, Title: "Done", Color: "#10b981"},
	}
}

func defaultTeamTasks(now time.Time) []models.TeamTask {
	day := 24 * time.Hour
	return []models.TeamTask{
		{
			ID:             "team-1",
			Title:          "Design landing page",
			Description:    "Mock up the new product landing page in Figma",
			Status:         models.StatusTodo,
			Assignee:       "Ana Torres",
			AssigneeAvatar: "🎨",
			Deadline:       "2026-01-25",
			Labels:         []string{"Design", "Frontend"},
			CreatedAt:      now.Add(-7 * day),
		},
		{
			ID:             "team-2",
			Title:          "Dashboard UI",
			Description:    "Build the main dashboard screen with the chart system",
			Status:         models.StatusInProgress,
			Assignee:       "Liam Chen",
			AssigneeAvatar: "💻",
			Deadline:       "2026-01-20",
			Labels:         []string{"Design", "Frontend", "Priority"},
			CreatedAt:      now.Add(-5 * day),
		},
		{
			ID:             "team-3",
			Title:          "Fix login failure on Safari",
			Description:    "Users cannot sign in on Safari and Firefox; suspect cookie policy",
			Status:         models.StatusUrgent,
			Assignee:       "Maya Singh",
			AssigneeAvatar: "🔴",
			Deadline:       "2026-01-17",
			Labels:         []string{"Bug", "Critical", "Hotfix"},
			CreatedAt:      now.Add(-1 * day),
		},
		{
			ID:             "team-4",
			Title:          "Set up project repository",
			Description:    "GitHub repo, CI pipeline, and baseline documentation",
			Status:         models.StatusDone,
			Assignee:       "Tom Okafor",
			AssigneeAvatar: "✅",
			Deadline:       "2026-01-10",
			Labels:         []string{"Setup", "DevOps"},
			CreatedAt:      now.Add(-10 * day),
		},
	}
}

func defaultPersonalTasks(now time.Time) []models.PersonalTask {
	day := 24 * time.Hour
	return []models.PersonalTask{
		{
			ID:            "personal-1",
			Title:         "Read the release notes",
			Status:        models.StatusTodo,
			Order:         1,
			ScheduledTime: "2026-01-17T09:00:00",
			CreatedAt:     now,
		},
		{
			ID:            "personal-2",
			Title:         "Write tests for the notes view",
			Status:        models.StatusInProgress,
			Order:         2,
			ScheduledTime: "2026-01-17T14:00:00",
			CreatedAt:     now,
		},
		{
			ID:            "personal-3",
			Title:         "Review teammate's change",
			Status:        models.StatusDone,
			Order:         3,
			ScheduledTime: "2026-01-16T10:00:00",
			CreatedAt:     now.Add(-1 * day),
		},
	}
}

func defaultNotes(now time.Time) []models.Note {
	day := 24 * time.Hour
	return []models.Note{
		{
			ID:      "note-1",
			Title:   "Login bug - browser compatibility",
			Content: "<p>Users cannot sign in on Safari and Firefox.</p><p>Cause: cookie policy differs across browsers.</p><p>Fix: revisit the SameSite cookie attribute and CORS headers.</p>",
			Color:   "slate",
			Attachments: []models.Attachment{
				{Name: "bug-report.pdf", URL: "/docs/bug-report.pdf", Size: 1024},
			},
			CreatedAt: now.Add(-1 * day),
			UpdatedAt: now,
		},
		{
			ID:             "note-2",
			Title:          "Dashboard design notes",
			Content:        "<p>Layout: top navbar, sidebar navigation, main content area.</p><ul><li>StatCard for metrics</li><li>Line, bar, and pie charts</li><li>Filter controls</li></ul>",
			LinkedTaskID:   "team-3",
			LinkedTaskType: models.TaskTypeTeam,
			CreatedAt:      now.Add(-3 * day),
			UpdatedAt:      now.Add(-1 * day),
		},
		{
			ID:      "note-3",
			Title:   "Generics study notes",
			Content: "How to build reusable components and functions",
			Color:   "yellow",
			Attachments: []models.Attachment{
				{Name: "generics-guide.md", URL: "/docs/generics-guide.md", Size: 5120},
				{Name: "examples.txt", URL: "/docs/examples.txt", Size: 2048},
			},
			CreatedAt: now.Add(-4 * day),
			UpdatedAt: now,
		},
		{
			ID:        "note-4",
			Title:     "Feature ideas",
			Content:   "Dark mode support - real-time notifications",
			Color:     "orange",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "note-5",
			Title:     "Performance tips",
			Content:   "Rendering optimization - avoid needless reflows",
			Color:     "green",
			CreatedAt: now.Add(-5 * day),
			UpdatedAt: now,
		},
	}
}
