// ABOUTME: Data models for property submissions and deal results
// ABOUTME: Defines PropertyInput, Deal, MatchedBuyer, and Submission structs
package models

import "time"

// PropertyInput is the payload for a single property submission.
// Numeric fields are either parsed numbers or nil; raw form text is never
// forwarded. Optional numbers encode as JSON null when absent.
type PropertyInput struct {
	OwnerName    string   `json:"owner_name"`
	OwnerEmail   string   `json:"owner_email"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	PropertyType string   `json:"property_type"`
	Bedrooms     *float64 `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	Sqft         *float64 `json:"sqft"`
	AskingPrice  float64  `json:"asking_price"`
	ARV          *float64 `json:"arv"`
	RepairCost   float64  `json:"repair_cost"`
	Notes        string   `json:"notes"`
}

// Property type constants.
const (
	PropertySingleFamily = "single_family"
	PropertyMultiFamily  = "multi_family"
	PropertyCondo        = "condo"
	PropertyTownhome     = "townhome"
	PropertyLand         = "land"
)

// PropertyTypes lists the accepted property types in display order.
func PropertyTypes() []string {
	return []string{
		PropertySingleFamily,
		PropertyMultiFamily,
		PropertyCondo,
		PropertyTownhome,
		PropertyLand,
	}
}

// ValidPropertyType reports whether t is one of the accepted property types.
func ValidPropertyType(t string) bool {
	switch t {
	case PropertySingleFamily, PropertyMultiFamily, PropertyCondo, PropertyTownhome, PropertyLand:
		return true
	}
	return false
}

// Deal is the backend's response to a submission. It is immutable once
// received; a new submission replaces the displayed deal wholesale.
type Deal struct {
	DealID        string         `json:"deal_id"`
	Rank          string         `json:"rank,omitempty"`
	Analysis      map[string]any `json:"analysis,omitempty"`
	MatchedBuyers []MatchedBuyer `json:"matched_buyers,omitempty"`
}

// MatchedBuyer is one buyer candidate returned for a deal. Ordering as
// returned by the server is display order.
type MatchedBuyer struct {
	BuyerID string  `json:"buyer_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Score   float64 `json:"score"`
}

// Rank constants.
const (
	RankA = "A"
	RankB = "B"
	RankC = "C"
	RankD = "D"
)

// Submission is a locally recorded submission outcome, kept so past deal
// IDs, ranks, and stages can be reviewed after the session ends.
type Submission struct {
	ID          string        `json:"id"`
	DealID      string        `json:"deal_id"`
	Rank        string        `json:"rank,omitempty"`
	Stage       PipelineStage `json:"stage"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	AskingPrice float64       `json:"asking_price"`
	CreatedAt   time.Time     `json:"created_at"`
}
