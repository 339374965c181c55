// Package view turns filtered, paginated collections into display rows, the
// way the management pages rendered their tables. It owns the per-page view
// state and field configuration; commands (extend, return, delete) go back
// through the remote client.
package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/listview"
)

// CustomerFields configures the customer search: id, name parts, email and
// city are all matchable.
func CustomerFields(c domain.Customer) []string {
	fields := []string{strconv.Itoa(int(c.ID)), c.FirstName, c.LastName, c.Email}
	if c.Address != nil {
		fields = append(fields, c.Address.Street, c.Address.City)
	}
	return fields
}

// AddressFields configures the address search.
func AddressFields(a domain.Address) []string {
	return []string{strconv.Itoa(int(a.ID)), a.Street, strconv.Itoa(int(a.PostalCode)), a.City}
}

// MediumFields configures the media search: title, author and genre, plus
// the numeric id.
func MediumFields(m domain.Medium) []string {
	return []string{strconv.Itoa(int(m.ID)), m.Title, m.Author, m.Genre}
}

// BorrowingFields configures the borrowing search: composed customer name,
// medium title and the numeric id.
func BorrowingFields(b domain.Borrowing) []string {
	fields := []string{strconv.Itoa(int(b.ID))}
	if b.Customer != nil {
		fields = append(fields, b.Customer.FullName())
	}
	if b.Medium != nil {
		fields = append(fields, b.Medium.Title)
	}
	return fields
}

// RenderMedia writes the current page of a media view as a table.
func RenderMedia(w io.Writer, v *listview.View[domain.Medium]) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tGENRE\tRATING\tSTATUS")
	for _, m := range v.PageItems() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Title, m.Author, m.Genre, stars(m.Rating), m.Status)
	}
	tw.Flush()
	renderFooter(w, v.CurrentPage(), v.TotalPages(), v.Total())
}

// RenderBorrowings writes the current page of a borrowing view, including
// the derived due date, extension and overdue markers.
func RenderBorrowings(w io.Writer, v *listview.View[domain.Borrowing]) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tMEDIUM\tLEND DATE\tDUE DATE\tFLAGS")
	for _, b := range v.PageItems() {
		customer := "unknown customer"
		if b.Customer != nil {
			customer = fmt.Sprintf("%d - %s", b.Customer.ID, b.Customer.FullName())
		}
		medium := "unknown medium"
		if b.Medium != nil {
			medium = fmt.Sprintf("%d - %s", b.Medium.ID, b.Medium.Title)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, customer, medium, b.LendDate, b.DueDate, borrowingFlags(b))
	}
	tw.Flush()
	renderFooter(w, v.CurrentPage(), v.TotalPages(), v.Total())
}

// RenderCustomers writes the current page of a customer view.
func RenderCustomers(w io.Writer, v *listview.View[domain.Customer]) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBIRTH DATE\tADDRESS\tEMAIL")
	for _, c := range v.PageItems() {
		address := "-"
		if c.Address != nil {
			address = fmt.Sprintf("%s, %d %s", c.Address.Street, c.Address.PostalCode, c.Address.City)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.FullName(), c.BirthDate, address, c.Email)
	}
	tw.Flush()
	renderFooter(w, v.CurrentPage(), v.TotalPages(), v.Total())
}

// RenderAddresses writes the current page of an address view.
func RenderAddresses(w io.Writer, v *listview.View[domain.Address]) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTREET\tPOSTAL CODE\tCITY")
	for _, a := range v.PageItems() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", a.ID, a.Street, a.PostalCode, a.City)
	}
	tw.Flush()
	renderFooter(w, v.CurrentPage(), v.TotalPages(), v.Total())
}

func borrowingFlags(b domain.Borrowing) string {
	var flags []string
	if b.IsExtended {
		flags = append(flags, "extended")
	}
	if b.IsOverdue {
		flags = append(flags, "OVERDUE")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func stars(rating int32) string {
	if rating <= 0 {
		return "-"
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", int(rating)) + strings.Repeat(".", 5-int(rating))
}

func renderFooter(w io.Writer, page, totalPages, total int) {
	fmt.Fprintf(w, "page %d/%d (%d items)\n", page, totalPages, total)
}
