package notifier

import (
	"fmt"
	"html"
	"net/url"
)

// LinkBuilder produces the confirmation and password-reset links embedded in
// outbound emails. Each link has the form
//
//	<configured base URI>?email=<addr>&token=<url-safe token>
//
// where token is already URL-safe encoded by the caller.
type LinkBuilder struct {
	confirmationBaseURL  string
	passwordResetBaseURL string
}

// NewLinkBuilder constructs a [LinkBuilder] from the two configured base
// URIs.
func NewLinkBuilder(confirmationBaseURL, passwordResetBaseURL string) *LinkBuilder {
	return &LinkBuilder{
		confirmationBaseURL:  confirmationBaseURL,
		passwordResetBaseURL: passwordResetBaseURL,
	}
}

// ConfirmationLink returns the emailed email-confirmation URL.
func (b *LinkBuilder) ConfirmationLink(email, encodedToken string) string {
	return buildLink(b.confirmationBaseURL, email, encodedToken)
}

// PasswordResetLink returns the emailed password-reset URL.
func (b *LinkBuilder) PasswordResetLink(email, encodedToken string) string {
	return buildLink(b.passwordResetBaseURL, email, encodedToken)
}

// ConfirmationBody returns the HTML body of the confirmation email.
func (b *LinkBuilder) ConfirmationBody(email, encodedToken string) string {
	link := b.ConfirmationLink(email, encodedToken)
	return fmt.Sprintf("Please confirm your account by <a href='%s'>clicking here</a>.", html.EscapeString(link))
}

// PasswordResetBody returns the HTML body of the password-reset email.
func (b *LinkBuilder) PasswordResetBody(email, encodedToken string) string {
	link := b.PasswordResetLink(email, encodedToken)
	return fmt.Sprintf("To reset your password <a href='%s'>click here</a>.", html.EscapeString(link))
}

func buildLink(base, email, encodedToken string) string {
	query := url.Values{}
	query.Set("email", email)
	query.Set("token", encodedToken)
	return base + "?" + query.Encode()
}
