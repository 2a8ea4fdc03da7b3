package kanban

// Default board installed on first launch.
func defaultColumns() []Column {
	return []Column{
		{
			ID:    "todo",
			Title: "TO DO",
			Color: "#3b82f6",
			Tasks: []Task{
				{
					ID:       "task-1",
					Title:    "Draft project specs and wireframes",
					DueDate:  "Oct 24",
					Assignee: Assignee{Name: "John Doe", Initials: "JD"},
					Status:   CardNormal,
				},
				{
					ID:       "task-2",
					Title:    "Stakeholder interview summary",
					DueDate:  "Oct 26",
					Assignee: Assignee{Name: "Jane Smith", Initials: "JS"},
					Status:   CardOverdue,
				},
				{
					ID:       "task-3",
					Title:    "Design landing page assets",
					DueDate:  "Oct 26",
					Assignee: Assignee{Name: "Mike Wilson", Initials: "MW"},
					Status:   CardNormal,
				},
			},
		},
		{
			ID:    "in-progress",
			Title: "IN PROGRESS",
			Color: "#f59e0b",
			Tasks: []Task{
				{
					ID:       "task-4",
					Title:    "Develop API integration for auth",
					DueDate:  "Oct 25",
					Assignee: Assignee{Name: "Sarah Johnson", Initials: "SJ"},
					Status:   CardNormal,
				},
				{
					ID:       "task-5",
					Title:    "User testing for onboarding flow",
					DueDate:  "Oct 28",
					Assignee: Assignee{Name: "Tom Brown", Initials: "TB"},
					Status:   CardNormal,
				},
			},
		},
		{
			ID:    "review",
			Title: "REVIEW",
			Color: "#8b5cf6",
			Tasks: []Task{
				{
					ID:       "task-6",
					Title:    "QA for dashboard reporting module",
					DueDate:  "Oct 23",
					Assignee: Assignee{Name: "Lisa Anderson", Initials: "LA"},
					Status:   CardNormal,
				},
			},
		},
		{
			ID:    "done",
			Title: "DONE",
			Color: "#10b981",
			Tasks: []Task{
				{
					ID:       "task-7",
					Title:    "Initialize repository and CI",
					DueDate:  "Oct 20",
					Assignee: Assignee{Name: "Chris Lee", Initials: "CL"},
					Status:   CardCompleted,
				},
				{
					ID:       "task-8",
					Title:    "Define color palette and fonts",
					DueDate:  "Oct 21",
					Assignee: Assignee{Name: "Emma Davis", Initials: "ED"},
					Status:   CardCompleted,
				},
			},
		},
	}
}
