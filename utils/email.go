// utils/email.go
package utils

import (
	"fmt"
	"foodiehub-api/models"
	"os"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance.
// It returns nil when no Postmark token is configured; callers treat a
// nil service as email disabled.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation - FoodieHub"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order! Your order (ID: %s) has been confirmed and is being prepared.<br><br>Total Amount: <strong>%s</strong><br>Payment Method: <strong>%s</strong><br>Delivery Address: %s, %s<br><br>Thank you for ordering with FoodieHub!",
		order.Address.FullName,
		order.ID,
		FormatPrice(order.Total),
		order.PaymentMethod,
		order.Address.Street,
		order.Address.City,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
