package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/wecareapp/driveclient/internal/drive"
)

// ProfileSet collects profile fields interactively and saves the singleton
// settings object. Existing values are replaced wholesale.
func (a *App) ProfileSet(ctx context.Context) error {
	var p drive.Profile
	var err error

	if p.Name, err = GetSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if p.Email, err = GetSimpleText(a.reader, "Email (optional)", os.Stdout); err != nil {
		return err
	}
	if p.Phone, err = GetSimpleText(a.reader, "Phone (optional)", os.Stdout); err != nil {
		return err
	}
	if p.BloodType, err = GetSimpleText(a.reader, "Blood type (optional)", os.Stdout); err != nil {
		return err
	}
	if p.Allergies, err = GetList(a.reader, "Allergies", os.Stdout); err != nil {
		return err
	}
	if p.EmergencyContact, err = GetSimpleText(a.reader, "Emergency contact (optional)", os.Stdout); err != nil {
		return err
	}

	if err := a.service.SaveProfile(ctx, p); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Println("Profile saved.")
	return nil
}

// ProfileShow prints the saved profile, if any.
func (a *App) ProfileShow(ctx context.Context) error {
	p, found, err := a.service.GetProfile(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if !found {
		fmt.Println("No profile saved yet.")
		return nil
	}

	fmt.Printf("Name:              %s\n", p.Name)
	if p.Email != "" {
		fmt.Printf("Email:             %s\n", p.Email)
	}
	if p.Phone != "" {
		fmt.Printf("Phone:             %s\n", p.Phone)
	}
	if p.BloodType != "" {
		fmt.Printf("Blood type:        %s\n", p.BloodType)
	}
	if len(p.Allergies) > 0 {
		fmt.Printf("Allergies:         %v\n", p.Allergies)
	}
	if p.EmergencyContact != "" {
		fmt.Printf("Emergency contact: %s\n", p.EmergencyContact)
	}
	fmt.Printf("Updated:           %s\n", p.UpdatedTime)
	return nil
}
