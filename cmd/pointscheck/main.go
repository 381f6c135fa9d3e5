// Command pointscheck reports provider teams that have no entry in the manual
// points table. It exits non-zero when any team is missing or a league fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/fixture-compare/internal/app"
	"github.com/riskibarqy/fixture-compare/internal/config"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/usecase"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pointscheck", flag.ContinueOnError)
	leagues := fs.String("leagues", "", "comma separated league codes, empty checks every supported league")
	pretty := fs.Bool("pretty", false, "indent the JSON report")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", "pointscheck")
	defer func() { _ = logger.Sync() }()

	services, err := app.NewServices(cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := services.Diagnostics.MissingPoints(ctx, splitCodes(*leagues))
	if err != nil {
		logger.Error("check missing points", "error", err)
		return 2
	}

	var out []byte
	if *pretty {
		out, err = sonic.ConfigStd.MarshalIndent(toOutput(report), "", "  ")
	} else {
		out, err = sonic.Marshal(toOutput(report))
	}
	if err != nil {
		logger.Error("encode report", "error", err)
		return 2
	}
	fmt.Fprintln(os.Stdout, string(out))

	if !report.OK() {
		return 1
	}
	return 0
}

type missingTeamOutput struct {
	TeamID               int64    `json:"teamId"`
	Name                 string   `json:"name"`
	Normalized           string   `json:"normalized"`
	SuggestedAliasTarget string   `json:"suggestedAliasTarget,omitempty"`
	KnownManualKeys      []string `json:"knownManualKeys,omitempty"`
}

type leagueOutput struct {
	LeagueCode   string              `json:"leagueCode"`
	TeamsChecked int                 `json:"teamsChecked"`
	Missing      []missingTeamOutput `json:"missing"`
	Error        string              `json:"error,omitempty"`
}

type reportOutput struct {
	GeneratedAt  string         `json:"generatedAt"`
	OK           bool           `json:"ok"`
	TotalMissing int            `json:"totalMissing"`
	FailedCount  int            `json:"failedCount"`
	Leagues      []leagueOutput `json:"leagues"`
}

func toOutput(report usecase.MissingPointsReport) reportOutput {
	out := reportOutput{
		GeneratedAt:  report.GeneratedAt.UTC().Format(time.RFC3339),
		OK:           report.OK(),
		TotalMissing: report.TotalMissing,
		FailedCount:  report.FailedCount,
		Leagues:      make([]leagueOutput, 0, len(report.Leagues)),
	}
	for _, item := range report.Leagues {
		league := leagueOutput{
			LeagueCode:   item.LeagueCode,
			TeamsChecked: item.TeamsChecked,
			Missing:      make([]missingTeamOutput, 0, len(item.Missing)),
			Error:        item.Error,
		}
		for _, missing := range item.Missing {
			league.Missing = append(league.Missing, missingTeamOutput(missing))
		}
		out.Leagues = append(out.Leagues, league)
	}
	return out
}

func splitCodes(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			out = append(out, code)
		}
	}
	return out
}
