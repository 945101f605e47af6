package paymentRoutes

import (
	controller "thumbpro/controllers/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes wires checkout and the Stripe webhook. Both are
// unauthenticated: the buyer has no account before paying, and the webhook
// authenticates through its signature.
func SetupPaymentRoutes(app *fiber.App) {
	stripeGroup := app.Group("/api/stripe")

	stripeGroup.Post("/checkout", controller.CreateCheckout)
	stripeGroup.Post("/webhook", controller.HandleWebhook)
}
