package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/errors"
)

// decodeCommand creates the decode command for inspecting a token without
// excavating it.
func (c *CLI) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Inspect the record encoded in a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dungeon.Decode(args[0])
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			fmt.Println(StyleTitle.Render(args[0]))
			printKeyValue("type", fmt.Sprintf("%s (level %d)", d.Type, d.Level))
			printKeyValue("rooms", fmt.Sprintf("%d", d.RoomCount))
			printKeyValue("area", fmt.Sprintf("%d", d.Area))
			printKeyValue("bounds", fmt.Sprintf("x %d..%d, y %d..%d",
				d.Bounds.MinX, d.Bounds.MaxX, d.Bounds.MinY, d.Bounds.MaxY))
			if d.Dominant != 0 {
				printKeyValue("dominant", fmt.Sprintf("%c (%d occurrences)",
					d.Dominant, d.Frequency[d.Dominant]))
			}

			fmt.Println()
			for i := 0; i < d.RoomCount; i++ {
				printDetail("room %-3d center (%d, %d)  size %d  shape %c",
					i, d.Centers[i].X, d.Centers[i].Y, d.Sizes[i], d.Shapes[i])
			}

			if pairs := dungeon.Tunnels(d.Centers); len(pairs) > 0 {
				var edges []string
				for i := 0; i+1 < d.RoomCount; i += 2 {
					edges = append(edges, fmt.Sprintf("%d↔%d", i, i+1))
				}
				fmt.Println()
				printKeyValue("tunnels", strings.Join(edges, "  "))
			}
			return nil
		},
	}
}
