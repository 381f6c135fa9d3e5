package league

import (
	"fmt"
	"strings"
)

const (
	CodePremierLeague = "PL"
	CodeLaLiga        = "PD"
	CodeSerieA        = "SA"
	CodeBundesliga    = "BL1"
	CodeLigue1        = "FL1"
)

// League is a domestic competition covered by the provider and the manual points tables.
type League struct {
	Code        string
	Name        string
	CountryCode string
}

func (l League) Validate() error {
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

var supported = []League{
	{Code: CodePremierLeague, Name: "Premier League", CountryCode: "ENG"},
	{Code: CodeLaLiga, Name: "La Liga", CountryCode: "ESP"},
	{Code: CodeSerieA, Name: "Serie A", CountryCode: "ITA"},
	{Code: CodeBundesliga, Name: "Bundesliga", CountryCode: "GER"},
	{Code: CodeLigue1, Name: "Ligue 1", CountryCode: "FRA"},
}

// Supported returns the competitions in display order.
func Supported() []League {
	return append([]League(nil), supported...)
}

func SupportedCodes() []string {
	out := make([]string, 0, len(supported))
	for _, item := range supported {
		out = append(out, item.Code)
	}
	return out
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func Lookup(code string) (League, bool) {
	code = NormalizeCode(code)
	for _, item := range supported {
		if item.Code == code {
			return item, true
		}
	}
	return League{}, false
}
