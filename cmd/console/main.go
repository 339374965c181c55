// Command console is a terminal front end for the library backend. It pulls
// a collection over REST, filters and paginates it locally and renders the
// current page, mirroring the four management pages of the web client.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"bibliothek-backend/internal/client"
	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/listview"
	"bibliothek-backend/internal/logger"
	"bibliothek-backend/internal/view"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080/bibliothek", "Backend base URL")
	resource := flag.String("resource", "borrowings", "Resource to show: customers, addresses, media, borrowings")
	query := flag.String("query", "", "Filter term applied across all display fields")
	page := flag.Int("page", 1, "Page to show")
	action := flag.String("action", "", "Optional command: checkout, extend, return, delete")
	id := flag.Int("id", 0, "Record id for delete (of the selected resource)")
	customerID := flag.Int("customer-id", 0, "Customer id for checkout")
	mediumID := flag.Int("medium-id", 0, "Medium id for checkout/extend/return")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	logger.Initialize(*logLevel, "text")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := client.New(*baseURL, nil)

	if *action != "" {
		runAction(ctx, c, *action, *resource, int32(*id), int32(*customerID), int32(*mediumID))
		return
	}

	switch *resource {
	case "customers":
		items, err := c.ListCustomers(ctx)
		exitOn(err)
		show(items, view.CustomerFields, view.RenderCustomers, *query, *page)
	case "addresses":
		items, err := c.ListAddresses(ctx)
		exitOn(err)
		show(items, view.AddressFields, view.RenderAddresses, *query, *page)
	case "media":
		items, err := c.ListMedia(ctx)
		exitOn(err)
		show(items, view.MediumFields, view.RenderMedia, *query, *page)
	case "borrowings":
		items, err := c.ListBorrowings(ctx)
		exitOn(err)
		show(items, view.BorrowingFields, view.RenderBorrowings, *query, *page)
	default:
		log.Fatalf("Unknown resource %q", *resource)
	}
}

func show[T any](items []T, fields listview.Fields[T], render func(io.Writer, *listview.View[T]), query string, page int) {
	v := listview.New(items, listview.DefaultPageSize, fields)
	if query != "" {
		v.SetQuery(query)
	}
	if page > 1 && !v.SetPage(page) {
		fmt.Fprintf(os.Stderr, "page %d is out of range, showing page %d\n", page, v.CurrentPage())
	}
	render(os.Stdout, v)
}

func runAction(ctx context.Context, c *client.Client, action, resource string, id, customerID, mediumID int32) {
	switch action {
	case "checkout":
		if customerID <= 0 || mediumID <= 0 {
			log.Fatalf("-customer-id and -medium-id are required for %q", action)
		}
		b, err := c.CreateBorrowing(ctx, customerID, mediumID)
		if errors.Is(err, domain.ErrMediumUnavailable) {
			fmt.Println("Medium is already borrowed.")
			os.Exit(1)
		}
		exitOn(err)
		fmt.Printf("Borrowed for %d days, due on %s.\n", b.DurationDays, b.DueDate)
	case "extend":
		if mediumID <= 0 {
			log.Fatalf("-medium-id is required for %q", action)
		}
		b, err := c.ExtendBorrowing(ctx, mediumID)
		if errors.Is(err, domain.ErrExtensionDenied) {
			fmt.Println("Borrowing is already at the maximum duration of 28 days.")
			os.Exit(1)
		}
		exitOn(err)
		fmt.Printf("Extended to %d days, now due on %s.\n", b.DurationDays, b.DueDate)
	case "return":
		if mediumID <= 0 {
			log.Fatalf("-medium-id is required for %q", action)
		}
		err := c.ReturnBorrowing(ctx, mediumID)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Println("No active borrowing for this medium.")
			os.Exit(1)
		}
		exitOn(err)
		fmt.Println("Medium returned.")
	case "delete":
		if id <= 0 {
			log.Fatalf("-id is required for %q", action)
		}
		var err error
		switch resource {
		case "customers":
			err = c.DeleteCustomer(ctx, id)
		case "addresses":
			err = c.DeleteAddress(ctx, id)
		case "media":
			err = c.DeleteMedium(ctx, id)
		default:
			log.Fatalf("delete is not supported for resource %q", resource)
		}
		if errors.Is(err, domain.ErrMediumUnavailable) {
			fmt.Println("Medium is currently borrowed and cannot be deleted.")
			os.Exit(1)
		}
		exitOn(err)
		fmt.Println("Deleted.")
	default:
		log.Fatalf("Unknown action %q", action)
	}
}

func exitOn(err error) {
	if err == nil {
		return
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, strings.Join(verr.Messages, "\n"))
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
