// Package cmd - groups command
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"copyshop-pricing/adapters/cart"
	"copyshop-pricing/core/grouping"
	"copyshop-pricing/core/output"
)

// groupsCmd shows how a reservation is partitioned
var groupsCmd = &cobra.Command{
	Use:   "groups <reservation.json>",
	Short: "Show how the publications of a reservation are grouped",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&groupingMode, "mode", "m", "", "grouping mode (transitive, one-hop)")
}

type groupView struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
	Related bool     `json:"related"`
}

func runGroups(cmd *cobra.Command, args []string) error {
	settings, err := loadBook()
	if err != nil {
		return err
	}

	lines, err := cart.Load(args[0], settings)
	if err != nil {
		return err
	}

	mode, err := resolveMode()
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	groups := grouping.GroupRelatedItems(lines, mode)
	views := make([]groupView, 0, groups.Len())
	for _, g := range groups.All() {
		views = append(views, groupView{
			ID:      g.ID,
			Members: g.MemberIDs(),
			Related: grouping.AreItemsRelated(g.Members),
		})
	}

	w := cmd.OutOrStdout()
	if f.Format() == output.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	fmt.Fprintf(w, "%d group(s), mode %s\n", len(views), mode)
	for _, v := range views {
		mark := " "
		if v.Related {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s\n", mark, v.ID)
		if len(v.Members) > 1 {
			fmt.Fprintf(w, "    %s\n", strings.Join(v.Members, ", "))
		}
	}
	return nil
}
