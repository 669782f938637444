package validator

import "strings"

// お問い合わせの必須項目
func ValidateContact(fullName, email, subject, message string) error {
	if strings.TrimSpace(fullName) == "" {
		return invalid("full_name", "Full name is required")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(subject) == "" {
		return invalid("subject", "Subject is required")
	}
	if strings.TrimSpace(message) == "" {
		return invalid("message", "Message is required")
	}
	return nil
}
