// ABOUTME: Submission history CLI commands
// ABOUTME: Lists previously submitted deals with rank and stage
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/quickflip/quickflip/db"
)

// DealsCommand lists recorded submissions, newest first.
func DealsCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("deals", flag.ExitOnError)
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	subs, err := db.ListSubmissions(database, *limit)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	if len(subs) == 0 {
		fmt.Println("No submissions yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DEAL ID\tRANK\tSTAGE\tADDRESS\tPRICE\tSUBMITTED")
	_, _ = fmt.Fprintln(w, "-------\t----\t-----\t-------\t-----\t---------")

	for _, sub := range subs {
		rank := sub.Rank
		if rank == "" {
			rank = "-"
		}
		address := sub.Address
		if sub.City != "" {
			address = fmt.Sprintf("%s, %s", sub.Address, sub.City)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.0f\t%s\n",
			sub.DealID, rank, sub.Stage.Label(), address, sub.AskingPrice,
			sub.CreatedAt.Format("2006-01-02 15:04"))
	}

	return w.Flush()
}
