package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tokendelve/excavator/pkg/errors"
	"github.com/tokendelve/excavator/pkg/store"
)

// historyCommand creates the history command for listing past generation
// runs from the configured store.
func (c *CLI) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [token]",
		Short: "List past generation runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.Mongo.URI == "" {
				printWarning("no history store configured (set mongo.uri in config.toml)")
				return nil
			}
			tok := ""
			if len(args) == 1 {
				tok = args[0]
			}
			return c.runHistory(cmd.Context(), tok, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list")
	return cmd
}

func (c *CLI) runHistory(ctx context.Context, tok string, limit int) error {
	st, err := store.NewMongoStore(ctx, store.MongoConfig{
		URI:      c.Config.Mongo.URI,
		Database: c.Config.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	if tok != "" {
		rec, err := st.Latest(ctx, tok)
		if err != nil {
			printError("%s", errors.UserMessage(err))
			return err
		}
		fmt.Println(StyleTitle.Render(rec.Token))
		printKeyValue("type", fmt.Sprintf("%s (level %d)", rec.Type, rec.Level))
		printKeyValue("rooms", fmt.Sprintf("%d", rec.RoomCount))
		printKeyValue("cells", fmt.Sprintf("%d", rec.CellCount))
		printKeyValue("seed", fmt.Sprintf("%d", rec.Seed))
		printKeyValue("generated", rec.CreatedAt.Local().Format(time.RFC822))
		return nil
	}

	recs, err := st.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		printInfo("No runs recorded yet")
		return nil
	}

	printHistoryTable(recs)
	return nil
}

// printHistoryTable renders recent runs as a bordered table, newest first.
func printHistoryTable(recs []store.Record) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.Token,
			fmt.Sprintf("%s (L%d)", rec.Type, rec.Level),
			fmt.Sprintf("%d", rec.RoomCount),
			fmt.Sprintf("%d", rec.CellCount),
			formatRelativeTime(rec.CreatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Token", "Type", "Rooms", "Cells", "Generated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}

// formatRelativeTime renders a timestamp as "5m ago" style text for recent
// times and a plain date for older ones.
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
