package main

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{
		Left:   false,
		Right:  false,
		Top:    true,
		Bottom: true,
	})
	return table
}

func writeFlightTable(w io.Writer, flights []entities.Flight) {
	table := newTable(w, "ID", "Airline", "Aircraft", "From", "To", "Gate", "Status")
	for _, f := range flights {
		table.Append([]string{
			f.ID.String(),
			f.Aircraft.AirlineName,
			f.Aircraft.Type,
			f.DepartureAirport.Name,
			f.ArrivalAirport.Name,
			f.Gate.Code,
			f.Status,
		})
	}
	table.Render()
}

func writeGateTable(w io.Writer, gates []entities.Gate) {
	table := newTable(w, "ID", "Code")
	for _, g := range gates {
		table.Append([]string{g.ID.String(), g.Code})
	}
	table.Render()
}

// writeAirportTable marks the remembered default airport with "*".
func writeAirportTable(w io.Writer, airports []entities.Airport, current entities.ID) {
	table := newTable(w, "", "ID", "Code", "Name")
	for _, a := range airports {
		mark := ""
		if !current.IsZero() && a.ID.Equal(current) {
			mark = "*"
		}
		table.Append([]string{mark, a.ID.String(), a.Code, a.Name})
	}
	table.Render()
}
