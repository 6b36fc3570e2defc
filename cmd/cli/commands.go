package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/mauv0809/mahjong-rating/internal/scoring"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(teamRankingCmd)
	rootCmd.AddCommand(addGameCmd)
	rootCmd.AddCommand(deleteGameCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(calcCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "games.csv", "File to write the CP949 CSV to")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List recorded games, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/games", nil)
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the personal ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/ranking", nil)
	},
}

var teamRankingCmd = &cobra.Command{
	Use:   "team-ranking",
	Short: "Show the team ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/team_ranking", nil)
	},
}

var addGameCmd = &cobra.Command{
	Use:     "add-game NAME SCORE NAME SCORE NAME SCORE NAME SCORE",
	Short:   "Record a game",
	Example: "  mahjong-cli add-game Alice 45000 Bob 25000 Carol 20000 Dan 10000",
	Args:    cobra.ExactArgs(2 * scoring.Seats),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := gameBody(args)
		if err != nil {
			return err
		}
		return performRequest(http.MethodPost, "/api/games", body)
	},
}

var deleteGameCmd = &cobra.Command{
	Use:   "delete-game ID",
	Short: "Delete a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid game id %q", args[0])
		}
		return performRequest(http.MethodDelete, "/api/games/"+args[0], nil)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download all games as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := http.Get(host + "/export")
		if err != nil {
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("export failed with status %d", resp.StatusCode)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		n, err := io.Copy(f, resp.Body)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", n, exportOut)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc SCORE SCORE SCORE SCORE",
	Short: "Compute ranks and points for four final scores without a server",
	Args:  cobra.ExactArgs(scoring.Seats),
	RunE: func(cmd *cobra.Command, args []string) error {
		scores := make([]int, len(args))
		total := 0
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("score %d: %q is not an integer", i+1, a)
			}
			scores[i] = n
			total += n
		}
		p, err := scoring.Calculate(scores)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i := range scores {
			fmt.Fprintf(out, "P%d  score %6d  rank %d  pt %6.1f\n", i+1, scores[i], p.Ranks[i], p.Points[i])
		}
		if total != scoring.StartingTotal {
			fmt.Fprintf(out, "warning: scores sum to %d, expected %d\n", total, scoring.StartingTotal)
		}
		return nil
	},
}

// gameBody builds the create-game payload from name/score pairs.
func gameBody(args []string) (map[string]any, error) {
	body := make(map[string]any, len(args))
	for i := 0; i < len(args); i += 2 {
		seat := i/2 + 1
		score, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("score for %s: %q is not an integer", args[i], args[i+1])
		}
		body[fmt.Sprintf("player%d_name", seat)] = args[i]
		body[fmt.Sprintf("player%d_score", seat)] = score
	}
	return body, nil
}

func performRequest(method, endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
