package contact

// Contact represents one roster entry from the directory spreadsheet.
type Contact struct {
	First           string // First name
	Last            string // Last name
	Source          string // How you know this person (free text)
	Email           string // Natural key, matched via NormalizeEmail
	TargetFrequency string // Declared cadence label, e.g. "monthly"
}

// Name returns the contact's display name
func (c Contact) Name() string {
	if c.First == "" {
		return c.Last
	}
	if c.Last == "" {
		return c.First
	}
	return c.First + " " + c.Last
}
