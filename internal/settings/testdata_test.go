package settings

func themeDefinition() Definition {
	return Definition{
		Key:     "theme",
		Label:   "Theme",
		Default: "light",
		Options: []Option{
			{Key: "light", Label: "Light"},
			{Key: "dark", Label: "Dark"},
		},
	}
}

func testSchema() Schema {
	return Schema{
		themeDefinition(),
		{
			Key:         "layout",
			Label:       "Layout",
			Description: "Page layout",
			Default:     "wide",
			Options: []Option{
				{Key: "narrow", Label: "Narrow"},
				{Key: "wide", Label: "Wide"},
			},
		},
		{
			Key:     "columns",
			Label:   "Columns",
			Default: "2",
			Options: []Option{
				{Key: "1", Label: "One"},
				{Key: "2", Label: "Two"},
				{Key: "3", Label: "Three"},
			},
		},
	}
}
