package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Todos
	AddTodo    string `yaml:"add_todo"`
	EditTodo   string `yaml:"edit_todo"`
	DeleteTodo string `yaml:"delete_todo"`
	ViewTodo   string `yaml:"view_todo"`
	Reload     string `yaml:"reload"`

	// Navigation
	PrevTodo string `yaml:"prev_todo"`
	NextTodo string `yaml:"next_todo"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTodo:    "a",
		EditTodo:   "e",
		DeleteTodo: "d",
		ViewTodo:   " ",
		Reload:     "r",

		PrevTodo: "k",
		NextTodo: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	def := DefaultKeyMappings()
	if k.AddTodo == "" {
		k.AddTodo = def.AddTodo
	}
	if k.EditTodo == "" {
		k.EditTodo = def.EditTodo
	}
	if k.DeleteTodo == "" {
		k.DeleteTodo = def.DeleteTodo
	}
	if k.ViewTodo == "" {
		k.ViewTodo = def.ViewTodo
	}
	if k.Reload == "" {
		k.Reload = def.Reload
	}
	if k.PrevTodo == "" {
		k.PrevTodo = def.PrevTodo
	}
	if k.NextTodo == "" {
		k.NextTodo = def.NextTodo
	}
	if k.ShowHelp == "" {
		k.ShowHelp = def.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = def.Quit
	}
}
