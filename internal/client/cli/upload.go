package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/wecareapp/driveclient/internal/drive"
	"github.com/wecareapp/driveclient/internal/filex"
)

// Upload reads a local file and pushes it into the docs folder together with
// its metadata sidecar.
func (a *App) Upload(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to local file", os.Stdout)
	if err != nil {
		return err
	}

	content, name, mimeType, err := filex.ReadPayload(path)
	if err != nil {
		fmt.Printf("Cannot read file: %s\n", err.Error())
		return err
	}

	displayName, err := GetSimpleText(a.reader, "Display name (empty keeps "+name+")", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetList(a.reader, "Tags", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (optional)", os.Stdout)
	if err != nil {
		return err
	}

	payload := drive.FilePayload{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(content)),
		Content:  content,
	}
	opts := drive.UploadOptions{
		DisplayName: displayName,
		Description: description,
		Tags:        tags,
		Category:    category,
	}

	result := a.service.UploadFile(ctx, payload, opts)
	if !result.Success {
		fmt.Printf("Upload failed: %s\n", result.Error)
		return nil
	}
	fmt.Printf("Uploaded, file id: %s\n", result.FileID)
	return nil
}
