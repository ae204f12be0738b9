package cli

import (
	"context"
	"fmt"
	"os"
)

// Delete removes a document and its metadata record.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter file id to delete", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := GetSimpleText(a.reader, "Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	if err := a.service.DeleteFile(ctx, id); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
