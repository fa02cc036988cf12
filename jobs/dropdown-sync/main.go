package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/e5hapiro/chevra-guest-form/pkg/dropdownsync"
	"github.com/e5hapiro/chevra-guest-form/pkg/gforms"
	"github.com/e5hapiro/chevra-guest-form/pkg/gsheets"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func main() {
	start := time.Now()
	slog.Info("Starting dropdown sync job", slog.String("formID", conf.DropdownSync.FormID), slog.String("sheet", conf.DropdownSync.SheetName))

	ctx, cancel := context.WithTimeout(context.Background(), conf.RunTimeout)
	defer cancel()

	sheetsClient, err := gsheets.NewClient(ctx,
		option.WithCredentialsFile(conf.GoogleCredentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		slog.Error("Error creating Google Sheets client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	formsClient, err := gforms.NewClient(ctx,
		option.WithCredentialsFile(conf.GoogleCredentialsFile),
		option.WithScopes(forms.FormsBodyScope),
	)
	if err != nil {
		slog.Error("Error creating Google Forms client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	choices, err := dropdownsync.UpdateDropdown(ctx, sheetsClient, formsClient, conf.DropdownSync)
	if err != nil {
		slog.Error("Dropdown sync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Dropdown sync job completed", slog.Int("choices", len(choices)), slog.String("duration", time.Since(start).String()))
}
