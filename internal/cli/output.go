package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// AuthResult is the decoded auth endpoint response
type AuthResult struct {
	Email        string `json:"email"`
	SessionToken string `json:"session_token"`
}

// PlayerResult is the decoded player response
type PlayerResult struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PhotoURL   string    `json:"photo_url"`
	TshirtSize int       `json:"tshirt_size"`
	DOB        string    `json:"dob"`
	Age        int       `json:"age"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryResult is the decoded category response
type CategoryResult struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Players   []string  `json:"players"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryMembersResult is the decoded category members response
type CategoryMembersResult struct {
	Category CategoryResult `json:"category"`
	Members  []PlayerResult `json:"members"`
}

// Output formats command results as text or JSON
type Output struct {
	format string
}

// NewOutput creates an Output for the given format
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print writes the result to stdout in the configured format
func (o *Output) Print(v any) {
	if o.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(v)
		return
	}

	switch r := v.(type) {
	case AuthResult:
		fmt.Printf("Logged in as %s\n", r.Email)
	case PlayerResult:
		o.printPlayers([]PlayerResult{r})
	case []PlayerResult:
		o.printPlayers(r)
	case CategoryResult:
		o.printCategories([]CategoryResult{r})
	case []CategoryResult:
		o.printCategories(r)
	case CategoryMembersResult:
		fmt.Printf("Category %s (%d/%d players)\n", r.Category.Name, len(r.Category.Players), 8)
		o.printPlayers(r.Members)
	default:
		fmt.Printf("%+v\n", v)
	}
}

func (o *Output) printPlayers(players []PlayerResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tDOB\tAGE")
	for _, p := range players {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n", p.ID, p.Name, p.TshirtSize, p.DOB, p.Age)
	}
	_ = w.Flush()
}

func (o *Output) printCategories(categories []CategoryResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPLAYERS")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%d/8\n", c.ID, c.Name, len(c.Players))
	}
	_ = w.Flush()
}
