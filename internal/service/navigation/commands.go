package navigation

// hubShortcuts are fixed launcher entries present regardless of area.
var hubShortcuts = []Command{
	{Label: "Home", Path: "/home", Group: "Portal"},
	{Label: "My landing area", Path: "/", Group: "Portal"},
	// Sign-out is a state change; the route only accepts POST.
	{Label: "Sign out", Path: "/auth/logout", Group: "Account", Method: "POST"},
}

// buildCommands flattens the launcher index. Precedence is fixed: explicit
// extra commands first, then hub shortcuts, then commands derived from the
// navigation tree. When a destination path appears more than once, the first
// occurrence wins and later duplicates are dropped silently.
func buildCommands(extra []Command, sections []Section) []Command {
	var out []Command
	seen := make(map[string]bool)

	add := func(c Command) {
		if c.Path == "" || seen[c.Path] {
			return
		}
		seen[c.Path] = true
		out = append(out, c)
	}

	for _, c := range extra {
		add(c)
	}
	for _, c := range hubShortcuts {
		add(c)
	}
	for _, s := range sections {
		for _, l := range s.Links {
			add(Command{Label: l.Label, Path: l.Path, Group: s.Label})
		}
	}
	return out
}
