package navigation

// Package navigation derives the portal chrome from an AccessSnapshot and
// the confirmed active area: the section tree, contextual quick-create
// actions, and a flattened command index for the fuzzy-search launcher.
// Ordering comes from explicit priority lists, never map iteration.

// Link is a single gated navigation destination.
type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Section groups related links under one heading.
type Section struct {
	Label string `json:"label"`
	Links []Link `json:"links"`
}

// QuickAction is a contextual "quick create" entry. Disabled actions carry a
// human-readable reason (e.g. preview mode forbids the underlying mutation).
type QuickAction struct {
	Label          string `json:"label"`
	Path           string `json:"path"`
	Disabled       bool   `json:"disabled"`
	DisabledReason string `json:"disabled_reason,omitempty"`
}

// Command is one entry of the flattened, de-duplicated launcher index.
// Method is set only for entries that are actions rather than navigations
// (e.g. sign-out must POST); an empty Method means a plain GET navigation.
type Command struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Group  string `json:"group"`
	Method string `json:"method,omitempty"`
}

// Navigation bundles everything the presentation layer needs for one request.
type Navigation struct {
	Sections     []Section     `json:"sections"`
	QuickActions []QuickAction `json:"quick_actions"`
	Commands     []Command     `json:"commands"`
}
