package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// List prints one line per document in the docs folder.
func (a *App) List(ctx context.Context) error {
	records, err := a.service.ListFiles(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(records) == 0 {
		fmt.Println("No documents.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %-6s %10d  %s\n", r.ID, r.DocType(), r.Size, r.Name)
	}
	return nil
}

// Show prints the full metadata record of a single document.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id to show", os.Stdout)
	if err != nil {
		return err
	}

	record, found, err := a.service.GetFileMetadata(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	if !found {
		fmt.Println("No metadata record for this file.")
		return nil
	}

	fmt.Printf("Name:        %s\n", record.Name)
	fmt.Printf("Type:        %s (%s)\n", record.DocType(), record.MimeType)
	fmt.Printf("Size:        %d bytes\n", record.Size)
	fmt.Printf("Created:     %s\n", record.CreatedTime)
	fmt.Printf("Modified:    %s\n", record.ModifiedTime)
	if record.Description != "" {
		fmt.Printf("Description: %s\n", record.Description)
	}
	if len(record.Tags) > 0 {
		fmt.Printf("Tags:        %v\n", record.Tags)
	}
	if record.Category != "" {
		fmt.Printf("Category:    %s\n", record.Category)
	}
	return nil
}

// Download fetches a document's content into the current directory.
func (a *App) Download(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id to download", os.Stdout)
	if err != nil {
		return err
	}

	content, mimeType, err := a.service.DownloadFile(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}

	name := id
	if record, found, err := a.service.GetFileMetadata(ctx, id); err == nil && found {
		name = record.Name
	}
	dest := filepath.Base(name)
	if err := os.WriteFile(dest, content, 0o600); err != nil {
		fmt.Printf("Cannot write %s: %s\n", dest, err.Error())
		return err
	}

	fmt.Printf("Saved %s (%s, %d bytes)\n", dest, mimeType, len(content))
	return nil
}
