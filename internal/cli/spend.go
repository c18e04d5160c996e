package cli

import (
	"context"
	"fmt"
	"io"

	"campaigen/internal/services"

	"github.com/shopspring/decimal"
)

func parseSpendAdd(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("spend", "add", "Add a new spend record.", stderr)

	var (
		amount decimalFlag
		date   dateFlag
	)
	fs.Var(&amount, "amount", "The amount spent (required)")
	description := fs.String("description", "", "Description of the spend")
	category := fs.String("category", "", "Category of the spend")
	fs.Var(&date, "date", "Date of the spend, YYYY-MM-DD or RFC 3339 (defaults to now)")

	set, err := parseFlags(fs, args, "amount")
	if err != nil {
		return nil, err
	}

	dto := services.CreateSpendRecordDTO{
		Amount:      amount.value,
		Description: optional(set, *description, "description"),
		Category:    optional(set, *category, "category"),
		Date:        date.ptr(),
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		when := "now"
		if dto.Date != nil {
			when = dto.Date.Format("2006-01-02")
		}
		fmt.Fprintf(stdout, "Adding spend: Amount=%s, Desc=%s, Cat=%s, Date=%s\n",
			dto.Amount.String(), display(dto.Description), display(dto.Category), when)

		created, err := svc.Spend.CreateSpendRecord(ctx, dto)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Spend record created with ID: %s\n", created.ID)
		return nil
	}, nil
}

func parseSpendList(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("spend", "list", "List all spend records.", stderr)
	if _, err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		fmt.Fprintln(stdout, "Listing all spend records...")

		records, err := svc.Spend.ListSpendRecords(ctx)
		if err != nil {
			return err
		}

		t := newTable(stdout, "ID", "DATE", "AMOUNT", "DESCRIPTION", "CATEGORY")
		for _, r := range records {
			t.row(r.ID.String(), r.Date.Format("2006-01-02"), formatAmount(r.Amount), display(r.Description), display(r.Category))
		}
		if err := t.flush(); err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(stdout, "No spend records found.")
		}
		return nil
	}, nil
}

func parseSpendGet(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("spend", "get", "Show one spend record.", stderr)
	var id uuidFlag
	fs.Var(&id, "id", "ID of the spend record (required)")
	if _, err := parseFlags(fs, args, "id"); err != nil {
		return nil, err
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		r, found, err := svc.Spend.GetSpendRecord(ctx, id.value)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(stdout, "No spend record found with ID: %s\n", id.value)
			return nil
		}

		fmt.Fprintf(stdout, "ID:          %s\n", r.ID)
		fmt.Fprintf(stdout, "Date:        %s\n", r.Date.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(stdout, "Amount:      %s\n", formatAmount(r.Amount))
		fmt.Fprintf(stdout, "Description: %s\n", display(r.Description))
		fmt.Fprintf(stdout, "Category:    %s\n", display(r.Category))
		return nil
	}, nil
}

func parseSpendDelete(args []string, stderr io.Writer) (Action, error) {
	fs := newFlagSet("spend", "delete", "Delete a spend record.", stderr)
	var id uuidFlag
	fs.Var(&id, "id", "ID of the spend record (required)")
	if _, err := parseFlags(fs, args, "id"); err != nil {
		return nil, err
	}

	return func(ctx context.Context, svc *Services, stdout io.Writer) error {
		if err := svc.Spend.DeleteSpendRecord(ctx, id.value); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Spend record %s deleted.\n", id.value)
		return nil
	}, nil
}

// formatAmount shows at least two decimal places without rounding away precision.
func formatAmount(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
