package supportValidators

import (
	"strings"

	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject string `json:"subject"`
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		} else if len(reqData.Subject) > 200 {
			errors["subject"] = "Subject must not exceed 200 characters!"
		}

		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

func UpdateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TicketID string  `json:"ticket_id"`
			Content  *string `json:"content"`
			Status   *string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if _, err := uuid.Parse(reqData.TicketID); err != nil {
			errors["ticket_id"] = "A valid ticket id is required!"
		}

		if reqData.Content == nil && reqData.Status == nil {
			errors["content"] = "Nothing to update: provide content or status!"
		}

		if reqData.Content != nil {
			*reqData.Content = strings.TrimSpace(*reqData.Content)
			if *reqData.Content == "" {
				errors["content"] = "Reply content must not be empty!"
			}
		}

		// closed is the only reachable target state, open has no way back
		if reqData.Status != nil && *reqData.Status != models.TicketClosed {
			errors["status"] = "Status can only be set to closed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicketUpdate", reqData)
		return c.Next()
	}
}
