// File: store/tables.go
package store

// Table layouts for every collection. Nested objects and maps go into JSON
// columns; flat string lists use native arrays where the database has them.
var (
	MembersTable = Table{
		Name: "team_members",
		Columns: []Column{
			col("name", KindText),
			col("position", KindText),
			col("status", KindText),
			col("joinDate", KindText),
			col("email", KindText),
			col("phone", KindText),
			col("avatar", KindText),
			col("bio", KindText),
			col("nationality", KindText),
			col("age", KindInt),
			col("stats", KindJSON),
			col("socialLinks", KindJSON),
			col("achievements", KindList),
			col("preferredPosition", KindText),
			col("contractEndDate", KindText),
			col("salary", KindFloat),
		},
	}

	NewsTable = Table{
		Name:    "news_articles",
		OrderBy: "created_at DESC, id DESC",
		Columns: []Column{
			col("title", KindText),
			col("description", KindText),
			col("content", KindText),
			col("category", KindText),
			col("status", KindText),
			col("author", KindText),
			col("date", KindText),
			col("views", KindInt),
			col("likes", KindInt),
			// JSON keeps an empty tag list distinct from a missing one.
			col("tags", KindJSON),
			col("image", KindText),
			col("featured", KindBool),
			col("priority", KindText),
			col("readTime", KindInt),
			col("metaDescription", KindText),
			col("publishDate", KindText),
			col("excerpt", KindText),
			col("lastModified", KindText),
			col("comments", KindJSON),
		},
	}

	RequestsTable = Table{
		Name: "join_requests",
		Columns: []Column{
			col("name", KindText),
			col("email", KindText),
			col("age", KindInt),
			col("position", KindText),
			col("experience", KindText),
			col("gamertag", KindText),
			col("platform", KindText),
			col("message", KindText),
			col("status", KindText),
			col("date", KindText),
			col("skillLevel", KindText),
			col("timezone", KindText),
			col("languages", KindList),
			col("availableDays", KindList),
			col("nationality", KindText),
			col("phoneNumber", KindText),
			col("previousTeams", KindList),
			col("preferredRole", KindText),
			col("motivation", KindText),
			col("videoLink", KindText),
			col("socialProof", KindText),
		},
	}

	MatchesTable = Table{
		Name: "matches",
		Columns: []Column{
			col("opponent", KindText),
			col("opponentLogo", KindText),
			col("date", KindText),
			col("time", KindText),
			col("result", KindText),
			col("score", KindText),
			col("competition", KindText),
			col("status", KindText),
			col("venue", KindText),
			col("importance", KindText),
			col("liveStream", KindText),
			col("ticketInfo", KindText),
			col("weather", KindText),
			col("attendance", KindInt),
			col("highlights", KindText),
			col("matchReport", KindText),
			col("playerRatings", KindJSON),
			col("formations", KindJSON),
			col("statistics", KindJSON),
		},
	}

	AchievementsTable = Table{
		Name: "achievements",
		Columns: []Column{
			col("title", KindText),
			col("description", KindText),
			col("date", KindText),
			col("type", KindText),
			col("image", KindText),
			col("importance", KindText),
			col("competition", KindText),
			col("prize", KindText),
			col("participants", KindList),
			col("proof", KindText),
			col("celebrationVideo", KindText),
		},
	}

	TournamentsTable = Table{
		Name: "tournaments",
		Columns: []Column{
			col("name", KindText),
			col("type", KindText),
			col("startDate", KindText),
			col("endDate", KindText),
			col("status", KindText),
			col("participants", KindInt),
			col("prizePool", KindText),
			col("format", KindText),
			col("rules", KindText),
			col("registrationDeadline", KindText),
			col("entryFee", KindFloat),
			col("contactPerson", KindText),
		},
	}

	TrainingTable = Table{
		Name: "training_sessions",
		Columns: []Column{
			col("title", KindText),
			col("date", KindText),
			col("time", KindText),
			col("duration", KindInt),
			col("type", KindText),
			col("location", KindText),
			col("coach", KindText),
			col("attendees", KindJSON),
			col("description", KindText),
			col("objectives", KindList),
			col("equipment", KindList),
			col("status", KindText),
		},
	}

	SettingsTable = Table{
		Name: "settings",
		Columns: []Column{
			col("teamName", KindText),
			col("teamLogo", KindText),
			col("primaryColor", KindText),
			col("secondaryColor", KindText),
			col("accentColor", KindText),
			col("description", KindText),
			col("founded", KindText),
			col("headquarters", KindText),
			col("website", KindText),
			col("socialLinks", KindJSON),
			col("recruitmentOpen", KindBool),
			col("maxTeamSize", KindInt),
			col("contactEmail", KindText),
			col("motto", KindText),
			col("achievements", KindList),
			col("sponsors", KindJSON),
			col("theme", KindText),
			// customCSS would snake-case to custom_c_s_s.
			{Field: "customCSS", Name: "custom_css", Kind: KindText},
			col("notifications", KindJSON),
			col("gameSettings", KindJSON),
		},
	}
)

// collectionTables lists every table with generated ids.
var collectionTables = []Table{
	MembersTable,
	NewsTable,
	RequestsTable,
	MatchesTable,
	AchievementsTable,
	TournamentsTable,
	TrainingTable,
}
