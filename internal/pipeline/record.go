package pipeline

// TeamRecord is one row of final output. Records are immutable once
// assembled and keep the input order of their team names.
type TeamRecord struct {
	Name          string
	Sport         string
	League        string
	FormedYear    string
	Stadium       string
	DescriptionES string
	Summary       string
}

// DefaultTeams is the team list processed when no names are given on the
// command line.
var DefaultTeams = []string{
	"Arsenal",
	"Chelsea",
	"Liverpool",
	"Manchester United",
	"Manchester City",
}
