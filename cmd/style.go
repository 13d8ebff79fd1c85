package main

import (
	"github.com/pterm/pterm"
)

// printSummary renders rows as a two-column table inside a titled box.
func printSummary(title string, rows [][]string) {
	table, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Println(table)
}
