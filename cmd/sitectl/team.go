package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jkmfoundation/site-api/internal/golf"
)

var teamOutstandingOnly bool

func teamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect golf tournament registrations",
	}

	show := &cobra.Command{
		Use:   "show [team-id]",
		Short: "Print a team, its balance and its participants",
		Example: `  sitectl team show 3f6c2a9e-8b1d-4f0a-9c3e-2d7b5a1e4c90
  sitectl team show 3f6c2a9e-8b1d-4f0a-9c3e-2d7b5a1e4c90 --outstanding`,
		Args: cobra.ExactArgs(1),
		RunE: runTeamShow,
	}
	show.Flags().BoolVar(&teamOutstandingOnly, "outstanding", false, "list only participants without a recorded payment")

	cmd.AddCommand(show)
	return cmd
}

func runTeamShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid team id %q: %w", args[0], err)
	}

	pool, err := openPool(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := golf.NewService(golf.NewTeamRepository(pool), golf.NewParticipantRepository(pool), nil)
	roster, err := svc.Roster(cmd.Context(), id)
	if errors.Is(err, golf.ErrTeamNotFound) {
		return fmt.Errorf("no team with id %s", id)
	}
	if err != nil {
		return err
	}

	return printRoster(cmd.OutOrStdout(), roster, teamOutstandingOnly)
}

func printRoster(w io.Writer, r *golf.Roster, outstandingOnly bool) error {
	t := r.Team
	fmt.Fprintf(w, "Team:     %s (%s)\n", t.TeamName, t.ID)
	fmt.Fprintf(w, "Leader:   %s %s <%s>\n", t.LeaderFirstName, t.LeaderLastName, t.LeaderEmail)
	fmt.Fprintf(w, "Option:   %s\n", t.PaymentOption)
	fmt.Fprintf(w, "Balance:  $%.2f (paid in full: %s)\n", t.BalanceRemaining, yesNo(t.TeamIsPaid))
	fmt.Fprintln(w, strings.Repeat("-", 40))

	participants := r.Participants
	if outstandingOnly {
		participants = r.Outstanding()
	}
	if len(participants) == 0 {
		fmt.Fprintln(w, "(no participants)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tPHONE\tLEADER\tPAID")
	for _, p := range participants {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\n",
			p.FirstName, p.LastName, p.Email, p.PhoneNumber, yesNo(p.IsLeader), yesNo(p.IsPaid))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
