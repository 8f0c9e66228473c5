package models

import (
	"fmt"
	"strings"
)

// Field-level rules carried over from the declarative entity constraints.
// Services call these before any storage write; the admin CRUD reuses them.

func ValidateAct(a *Act) error {
	if err := lengthBetween("title", a.Title, 3, 255); err != nil {
		return err
	}
	if err := lengthBetween("description", a.Description, 10, 1000); err != nil {
		return err
	}
	if err := lengthBetween("category", a.Category, 3, 255); err != nil {
		return err
	}
	if a.UserID == 0 {
		return fmt.Errorf("act requires an owning user")
	}
	return nil
}

func ValidateUser(u *User) error {
	if err := lengthBetween("pseudo", u.Pseudo, 3, 255); err != nil {
		return err
	}
	if !looksLikeEmail(u.Email) {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

func ValidateChallenge(c *Challenge) error {
	if err := lengthBetween("title", c.Title, 3, 255); err != nil {
		return err
	}
	if c.Objective <= 0 {
		return fmt.Errorf("objective must be positive")
	}
	if c.Progress < 0 {
		return fmt.Errorf("progress must be zero or positive")
	}
	return nil
}

func ValidateComment(c *Comment) error {
	if err := lengthBetween("content", c.Content, 2, 1000); err != nil {
		return err
	}
	if c.ActID == 0 {
		return fmt.Errorf("comment requires an act")
	}
	return nil
}

func ValidateLocation(l *Location) error {
	if err := lengthBetween("city", l.City, 2, 100); err != nil {
		return err
	}
	if err := lengthBetween("country", l.Country, 2, 100); err != nil {
		return err
	}
	if l.Latitude != nil && (*l.Latitude < -90 || *l.Latitude > 90) {
		return fmt.Errorf("latitude must be between -90 and 90 degrees")
	}
	if l.Longitude != nil && (*l.Longitude < -180 || *l.Longitude > 180) {
		return fmt.Errorf("longitude must be between -180 and 180 degrees")
	}
	return nil
}

func ValidateChain(c *Chain) error {
	return lengthBetween("invitation token", c.InvitationToken, 6, 255)
}

func ValidateContact(c *Contact) error {
	if err := lengthBetween("first name", c.FirstName, 2, 100); err != nil {
		return err
	}
	if err := lengthBetween("name", c.Name, 2, 100); err != nil {
		return err
	}
	if !looksLikeEmail(c.Email) {
		return fmt.Errorf("email is not a valid address")
	}
	if err := lengthBetween("subject", c.Subject, 2, 255); err != nil {
		return err
	}
	return lengthBetween("message", c.Message, 10, 2000)
}

func lengthBetween(field, value string, min, max int) error {
	n := len(strings.TrimSpace(value))
	if n < min {
		return fmt.Errorf("%s must be at least %d characters", field, min)
	}
	if n > max {
		return fmt.Errorf("%s must be under %d characters", field, max)
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".") && len(s) <= 255
}
