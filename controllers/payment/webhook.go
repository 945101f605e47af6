package paymentController

import (
	"encoding/json"
	"errors"
	"log"

	"thumbpro/config"
	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"
	"thumbpro/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HandleWebhook verifies the Stripe signature and provisions an account
// when a checkout completes. Stripe delivers at least once; replays must
// come back 200.
func HandleWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get("stripe-signature")

	event, err := webhook.ConstructEventWithOptions(payload, signature, config.AppConfig.StripeWebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid webhook signature!")
	}

	if event.Type != "checkout.session.completed" {
		return c.JSON(fiber.Map{"received": true})
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Printf("Error parsing checkout session from event %s: %v", event.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Malformed event payload!")
	}

	email := session.CustomerEmail
	name := ""
	if session.CustomerDetails != nil {
		if session.CustomerDetails.Email != "" {
			email = session.CustomerDetails.Email
		}
		name = session.CustomerDetails.Name
	}
	if email == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Checkout session has no customer email!")
	}

	created, err := ProvisionMember(database.Database.Db, email, name)
	if err != nil {
		log.Printf("Error provisioning member %s from event %s: %v", email, event.ID, err)
		// 500 makes Stripe retry with its own backoff
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to provision account!")
	}

	if created {
		utils.SendWelcomeEmail(email, name, config.AppConfig.ProvisionPassword)
	}

	return c.JSON(fiber.Map{"received": true})
}

// ProvisionMember creates a paid member account with the temporary password
// and a pre-verified email. An email that already has an account is a
// webhook replay, not an error.
func ProvisionMember(db *gorm.DB, email, name string) (bool, error) {
	err := db.Where("email = ?", email).First(&models.User{}).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(config.AppConfig.ProvisionPassword), config.AppConfig.SaltRound)
	if err != nil {
		return false, err
	}

	user := models.User{
		Name:            name,
		Email:           email,
		Password:        string(hashedPassword),
		Role:            models.RoleMember,
		IsEmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		// A replay racing the first delivery hits the unique email index;
		// the account exists, which is all the webhook promises.
		if db.Where("email = ?", email).First(&models.User{}).Error == nil {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
