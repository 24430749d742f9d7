package cli

func (a *App) commands() []command {
	return []command{
		{name: "register", usage: "register", run: a.Register},
		{name: "login", usage: "login", run: a.Login},
		{name: "health", usage: "health", run: a.Health},

		{name: "logout", usage: "logout", private: true, run: a.Logout},
		{name: "whoami", usage: "whoami", private: true, run: a.WhoAmI},
		{name: "profile", usage: "profile", private: true, run: a.Profile},
		{name: "password", usage: "password", private: true, run: a.Password},
		{name: "delete-account", usage: "delete-account", private: true, run: a.DeleteAccount},

		{name: "checkin", usage: "checkin", private: true, run: a.Checkin},
		{name: "quick", usage: "quick", private: true, run: a.QuickCheckin},
		{name: "history", usage: "history [page]", private: true, run: a.History},
		{name: "refresh", usage: "refresh", private: true, run: a.Refresh},
		{name: "show", usage: "show <id>", private: true, run: a.ShowCheckin},
		{name: "edit", usage: "edit <id>", private: true, run: a.EditCheckin},
		{name: "delete", usage: "delete <id>", private: true, run: a.DeleteCheckin},
		{name: "search", usage: "search", private: true, run: a.Search},

		{name: "tips", usage: "tips", private: true, run: a.Tips},
		{name: "tip", usage: "tip <id>", private: true, run: a.Tip},

		{name: "weekly", usage: "weekly <yyyy-mm-dd>", private: true, run: a.Weekly},
		{name: "monthly", usage: "monthly <yyyy-mm>", private: true, run: a.Monthly},
		{name: "trends", usage: "trends [week|month|year]", private: true, run: a.Trends},
		{name: "streak", usage: "streak", private: true, run: a.Streak},
		{name: "compare", usage: "compare <period1> <period2>", private: true, run: a.Compare},
		{name: "recommendations", usage: "recommendations", private: true, run: a.Recommendations},

		{name: "goals", usage: "goals", private: true, run: a.Goals},
		{name: "goal-add", usage: "goal-add", private: true, run: a.AddGoal},
		{name: "goal-progress", usage: "goal-progress <id>", private: true, run: a.GoalProgress},
		{name: "goal-delete", usage: "goal-delete <id>", private: true, run: a.DeleteGoal},

		{name: "reminders", usage: "reminders", private: true, run: a.Reminders},
		{name: "reminder-add", usage: "reminder-add", private: true, run: a.AddReminder},
		{name: "reminder-toggle", usage: "reminder-toggle <id>", private: true, run: a.ToggleReminder},
		{name: "reminder-delete", usage: "reminder-delete <id>", private: true, run: a.DeleteReminder},

		{name: "achievements", usage: "achievements", private: true, run: a.Achievements},
	}
}

// oneArg returns the single positional argument or a usage error.
func oneArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage
	}
	return args[0], nil
}
