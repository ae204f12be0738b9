package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/wecareapp/driveclient/internal/drive"
)

// Update edits a document's metadata record. Empty answers leave the
// corresponding field unchanged.
func (a *App) Update(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id to update", os.Stdout)
	if err != nil {
		return err
	}

	var upd drive.MetadataUpdate

	name, err := GetSimpleText(a.reader, "New name (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		upd.Name = &name
	}

	description, err := GetSimpleText(a.reader, "New description (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		upd.Description = &description
	}

	tags, err := GetList(a.reader, "New tags (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	upd.Tags = tags

	category, err := GetSimpleText(a.reader, "New category (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if category != "" {
		upd.Category = &category
	}

	record, err := a.service.UpdateMetadata(ctx, id, upd)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Printf("Updated %s (modified %s)\n", record.Name, record.ModifiedTime)
	return nil
}

// Rename changes only the display name, propagating it to the content file.
func (a *App) Rename(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id to rename", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("Empty name, nothing to do.")
		return nil
	}

	record, err := a.service.UpdateFileName(ctx, id, name)
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Printf("Renamed to %s\n", record.Name)
	return nil
}
