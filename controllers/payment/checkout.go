package paymentController

import (
	"log"

	"thumbpro/config"
	"thumbpro/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// CreateCheckout opens a Stripe checkout session for the course price.
// The buyer does not need an account yet; provisioning happens from the
// webhook after payment.
func CreateCheckout(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil && len(c.Body()) > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	cfg := config.AppConfig

	// Local preview without Stripe
	if cfg.DevMode {
		return c.JSON(fiber.Map{
			"url": cfg.SiteURL + "/merci?session_id=dev",
		})
	}

	if cfg.StripePriceID == "" {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Checkout is not configured!")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(cfg.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(cfg.SiteURL + "/merci?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(cfg.SiteURL + "/#pricing"),
	}
	if reqData.Email != "" {
		params.CustomerEmail = stripe.String(reqData.Email)
	}

	s, err := session.New(params)
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create checkout session!")
	}

	return c.JSON(fiber.Map{"url": s.URL})
}
