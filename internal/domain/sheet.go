package domain

// DefaultJudgeCount is the number of judges on a fresh sheet.
const DefaultJudgeCount = 3

// Sheet is an immutable snapshot of everything the user has entered: the
// judges and both audience pools. Consumers compare sheets by value to
// decide whether anything changed.
type Sheet struct {
	Panel    Panel
	Audience Audience
}

// NewSheet returns a sheet with DefaultJudgeCount blank judges and two
// empty audience pools.
func NewSheet() Sheet {
	return Sheet{Panel: NewPanel(DefaultJudgeCount)}
}

// Equal reports whether two sheets hold the same input values.
func (s Sheet) Equal(other Sheet) bool {
	return s.Audience == other.Audience && s.Panel.Equal(other.Panel)
}
