package domain

// FixOptions controls a single rewrite run.
type FixOptions struct {
	Dir    string `json:"dir"`
	Glob   string `json:"glob"`
	DryRun bool   `json:"dry_run"`
	// KeepContent retains before/after text on each FileFix for previews.
	KeepContent bool `json:"-"`
}

// FileFix is the outcome for one file that matched the rule.
type FileFix struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Matches int    `json:"matches"`
	Written bool   `json:"written"`
	Dirty   bool   `json:"dirty,omitempty"`
	Diff    string `json:"diff,omitempty"`
	Before  string `json:"-"`
	After   string `json:"-"`
}

// FixReport summarizes a run. Fixed counts files, not matches.
type FixReport struct {
	Rule    string    `json:"rule"`
	Dir     string    `json:"dir"`
	Glob    string    `json:"glob"`
	DryRun  bool      `json:"dry_run"`
	Commit  string    `json:"commit,omitempty"`
	Scanned int       `json:"scanned"`
	Fixed   int       `json:"fixed"`
	Files   []FileFix `json:"files"`
}
