package footballdata

type teamPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type competitionPayload struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type standingsEnvelope struct {
	Competition competitionPayload `json:"competition"`
	Standings   []standingGroup    `json:"standings"`
}

type standingGroup struct {
	Stage string            `json:"stage"`
	Type  string            `json:"type"`
	Table []standingRowItem `json:"table"`
}

type standingRowItem struct {
	Position       int         `json:"position"`
	Team           teamPayload `json:"team"`
	PlayedGames    int         `json:"playedGames"`
	Form           *string     `json:"form"`
	Won            int         `json:"won"`
	Draw           int         `json:"draw"`
	Lost           int         `json:"lost"`
	Points         int         `json:"points"`
	GoalsFor       int         `json:"goalsFor"`
	GoalsAgainst   int         `json:"goalsAgainst"`
	GoalDifference *int        `json:"goalDifference"`
}

type teamsEnvelope struct {
	Competition competitionPayload `json:"competition"`
	Teams       []teamPayload      `json:"teams"`
}

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID          int64              `json:"id"`
	UTCDate     string             `json:"utcDate"`
	Status      string             `json:"status"`
	Matchday    *int               `json:"matchday"`
	Competition competitionPayload `json:"competition"`
	HomeTeam    teamPayload        `json:"homeTeam"`
	AwayTeam    teamPayload        `json:"awayTeam"`
}

type errorEnvelope struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
}
