package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/wecareapp/driveclient/internal/drive"
)

// reportError prints a user-facing message for a failed command, mapping the
// core's taxonomy onto the three prompts the UI must distinguish.
func (a *App) reportError(err error) {
	switch {
	case errors.Is(err, drive.ErrUnauthenticated):
		fmt.Println("Not authenticated. Use 'login' first.")
	case errors.Is(err, drive.ErrSessionExpired):
		fmt.Println("Session expired, please log in again.")
		a.loggedIn = false
	default:
		fmt.Printf("Operation failed: %s\n", err.Error())
	}
}

// Login stores a pasted OAuth access token and validates it against the
// provider before considering the session established.
func (a *App) Login(ctx context.Context) error {
	token, err := GetSecret("Paste access token", os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Println("Empty token, not logged in.")
		return nil
	}

	a.service.SetAccessToken(token)
	if err := a.service.ValidateToken(ctx); err != nil {
		a.service.ClearAccessToken()
		a.reportError(err)
		return err
	}

	a.loggedIn = true
	fmt.Println("Logged in.")
	return nil
}

// Logout clears the token and the cached folder identifiers.
func (a *App) Logout(ctx context.Context) error {
	a.service.ClearAccessToken()
	a.loggedIn = false
	fmt.Println("Logged out.")
	return nil
}

// Refresh exchanges a pasted refresh token for a new access token.
func (a *App) Refresh(ctx context.Context) error {
	refreshToken, err := GetSecret("Paste refresh token", os.Stdout)
	if err != nil {
		return err
	}

	_, expiresIn, err := a.service.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		a.reportError(err)
		return err
	}

	a.loggedIn = true
	fmt.Printf("Token refreshed, expires in %d seconds.\n", expiresIn)
	return nil
}

// Status prints the diagnostic session snapshot.
func (a *App) Status(ctx context.Context) error {
	st := a.service.GetFolderStatus()
	fmt.Printf("token held:  %v\n", st.TokenHeld)
	fmt.Printf("provisioned: %v\n", st.Provisioned)
	if st.Provisioned {
		fmt.Printf("root:     %s\n", st.RootID)
		fmt.Printf("docs:     %s\n", st.DocsID)
		fmt.Printf("metadata: %s\n", st.MetadataID)
		fmt.Printf("settings: %s\n", st.SettingsID)
	}
	return nil
}

// Init provisions the folder structure eagerly instead of on first use.
func (a *App) Init(ctx context.Context) error {
	if err := a.service.InitializeFolderStructure(ctx); err != nil {
		a.reportError(err)
		return err
	}
	fmt.Println("Folder structure ready.")
	return nil
}
