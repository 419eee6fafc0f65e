// ABOUTME: One-shot property submission command
// ABOUTME: Collects flags into the intake form, submits, and prints the deal
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/quickflip/quickflip/api"
	"github.com/quickflip/quickflip/db"
	"github.com/quickflip/quickflip/form"
	"github.com/quickflip/quickflip/models"
	"github.com/quickflip/quickflip/present"
)

// SubmitCommand submits a property and prints the resulting deal.
func SubmitCommand(database *sql.DB, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	owner := fs.String("owner", "", "Owner name (required)")
	email := fs.String("email", "", "Owner email")
	address := fs.String("address", "", "Street address (required)")
	city := fs.String("city", "", "City (required)")
	state := fs.String("state", "", "State (required)")
	zip := fs.String("zip", "", "ZIP code (required)")
	propertyType := fs.String("type", models.PropertySingleFamily, "Property type (single_family, multi_family, condo, townhome, land)")
	beds := fs.String("beds", "", "Bedrooms")
	baths := fs.String("baths", "", "Bathrooms")
	sqft := fs.String("sqft", "", "Square footage")
	price := fs.String("price", "", "Asking price (required)")
	arv := fs.String("arv", "", "After-repair value")
	repairs := fs.String("repairs", "", "Repair cost estimate")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	f := form.New()
	f = f.Update(form.FieldOwnerName, *owner)
	f = f.Update(form.FieldOwnerEmail, *email)
	f = f.Update(form.FieldAddress, *address)
	f = f.Update(form.FieldCity, *city)
	f = f.Update(form.FieldState, *state)
	f = f.Update(form.FieldZipCode, *zip)
	f = f.Update(form.FieldPropertyType, *propertyType)
	f = f.Update(form.FieldBedrooms, *beds)
	f = f.Update(form.FieldBathrooms, *baths)
	f = f.Update(form.FieldSqft, *sqft)
	f = f.Update(form.FieldAskingPrice, *price)
	f = f.Update(form.FieldARV, *arv)
	f = f.Update(form.FieldRepairCost, *repairs)
	f = f.Update(form.FieldNotes, *notes)

	payload, err := f.ToPayload()
	if err != nil {
		return err
	}

	deal, err := client.SubmitProperty(context.Background(), payload)
	if err != nil {
		return err
	}

	stage := models.InitialStage(deal)

	if err := db.RecordSubmission(database, &models.Submission{
		DealID:      deal.DealID,
		Rank:        deal.Rank,
		Stage:       stage,
		Address:     payload.Address,
		City:        payload.City,
		State:       payload.State,
		AskingPrice: payload.AskingPrice,
	}); err != nil {
		fmt.Printf("  Warning: Failed to record submission: %v\n", err)
	}

	fmt.Printf("✓ Deal created: %s\n", deal.DealID)
	if deal.Rank != "" {
		fmt.Printf("  Rank: %s\n", deal.Rank)
	}
	fmt.Printf("  Stage: %s\n", stage.Label())

	if entries := present.AnalysisEntries(deal.Analysis); len(entries) > 0 {
		fmt.Println("\nAnalysis:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, entry := range entries {
			_, _ = fmt.Fprintf(w, "  %s\t%s\n", entry.Label, entry.Value)
		}
		_ = w.Flush()
	}

	fmt.Println("\nMatched Buyers:")
	if len(deal.MatchedBuyers) == 0 {
		fmt.Println("  " + present.NoBuyersMessage)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "  NAME\tEMAIL\tSCORE")
	for _, row := range present.Buyers(deal.MatchedBuyers) {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n", row.Name, row.Email, row.Score)
	}
	_ = w.Flush()

	return nil
}
