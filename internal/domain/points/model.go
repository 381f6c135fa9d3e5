package points

// Source identifies where a points total came from.
type Source string

const (
	SourceStandings Source = "standings"
	SourceManual    Source = "manual"
)

// Resolution is the answer to "how many points does a team have". It always
// carries a number; Error explains why live data could not be used.
type Resolution struct {
	LeagueCode  string
	TeamName    string
	Points      int
	Source      Source
	MatchedName string
	Error       string
}
