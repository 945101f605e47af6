package supportController

import (
	"log"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"
	"thumbpro/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTicket opens a ticket with its first message in one transaction, so
// a ticket can never exist without a message
func CreateTicket(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedTicket").(*struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ticket := models.SupportTicket{
		TicketID: uuid.NewString(),
		UserID:   user.ID,
		Subject:  reqData.Subject,
		Status:   models.TicketOpen,
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		message := models.SupportMessage{
			SupportTicketID: ticket.ID,
			AuthorID:        user.ID,
			IsStaff:         false,
			Content:         reqData.Content,
		}
		return tx.Create(&message).Error
	})
	if err != nil {
		log.Printf("Error creating support ticket for user %d: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create support ticket!")
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"ticket_id": ticket.TicketID,
	})
}

// GetSupport serves both the summary list and, with ?ticket_id=, the
// full thread
func GetSupport(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if ticketID := c.Query("ticket_id"); ticketID != "" {
		return getTicketDetail(c, user, ticketID)
	}
	return listTickets(c, user)
}

func getTicketDetail(c *fiber.Ctx, user *models.User, ticketID string) error {
	db := database.Database.Db

	var ticket models.SupportTicket
	if err := db.Where("ticket_id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Ticket not found!")
	}

	if ticket.UserID != user.ID && !user.IsStaff() {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You cannot view this ticket!")
	}

	var messages []models.SupportMessage
	if err := db.Where("support_ticket_id = ?", ticket.ID).
		Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch messages!")
	}

	return c.JSON(fiber.Map{
		"ticket":   ticket,
		"messages": messages,
	})
}

// TicketSummary is one row of the ticket list view
type TicketSummary struct {
	models.SupportTicket
	LastMessage string `json:"last_message"`
	LastAuthor  string `json:"last_author"`
	LastIsStaff bool   `json:"last_is_staff"`
}

// listTickets loads every summary in three queries instead of one
// last-message lookup per ticket
func listTickets(c *fiber.Ctx, user *models.User) error {
	db := database.Database.Db

	query := db.Where("is_deleted = ?", false)
	if !user.IsStaff() {
		query = query.Where("user_id = ?", user.ID)
	}

	var tickets []models.SupportTicket
	if err := query.Order("updated_at DESC").Find(&tickets).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tickets!")
	}

	if len(tickets) == 0 {
		return c.JSON(fiber.Map{"tickets": []TicketSummary{}})
	}

	ticketIDs := make([]uint, len(tickets))
	for i, t := range tickets {
		ticketIDs[i] = t.ID
	}

	var messages []models.SupportMessage
	if err := db.Where("support_ticket_id IN ?", ticketIDs).
		Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch messages!")
	}

	// Ascending order means the map ends up holding the latest message
	lastByTicket := make(map[uint]models.SupportMessage, len(tickets))
	authorIDs := make(map[uint]bool)
	for _, m := range messages {
		lastByTicket[m.SupportTicketID] = m
	}
	for _, m := range lastByTicket {
		authorIDs[m.AuthorID] = true
	}

	ids := make([]uint, 0, len(authorIDs))
	for id := range authorIDs {
		ids = append(ids, id)
	}
	var authors []models.User
	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Find(&authors).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch authors!")
		}
	}
	nameByID := make(map[uint]string, len(authors))
	for _, a := range authors {
		nameByID[a.ID] = a.Name
	}

	summaries := make([]TicketSummary, len(tickets))
	for i, t := range tickets {
		summaries[i] = TicketSummary{SupportTicket: t}
		if m, ok := lastByTicket[t.ID]; ok {
			summaries[i].LastMessage = m.Content
			summaries[i].LastAuthor = nameByID[m.AuthorID]
			summaries[i].LastIsStaff = m.IsStaff
		}
	}

	return c.JSON(fiber.Map{"tickets": summaries})
}

// UpdateTicket handles replies and the open -> closed transition
func UpdateTicket(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedTicketUpdate").(*struct {
		TicketID string  `json:"ticket_id"`
		Content  *string `json:"content"`
		Status   *string `json:"status"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var ticket models.SupportTicket
	if err := db.Where("ticket_id = ? AND is_deleted = ?", reqData.TicketID, false).First(&ticket).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Ticket not found!")
	}

	isOwner := ticket.UserID == user.ID
	if !isOwner && !user.IsStaff() {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You cannot modify this ticket!")
	}

	// Reject before mutating anything, a reply+close PATCH must not end up
	// half applied
	if reqData.Status != nil && !middleware.RoleCan(user.Role, middleware.CapCloseTickets) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Only support staff can close a ticket!")
	}
	if reqData.Content != nil && ticket.Status == models.TicketClosed {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Ticket is closed!")
	}

	// The reply lands first: staff may post a final answer and close the
	// ticket in the same request
	if reqData.Content != nil {
		isStaffReply := !isOwner && middleware.RoleCan(user.Role, middleware.CapStaffReply)
		message := models.SupportMessage{
			SupportTicketID: ticket.ID,
			AuthorID:        user.ID,
			IsStaff:         isStaffReply,
			Content:         *reqData.Content,
		}
		if err := db.Create(&message).Error; err != nil {
			log.Printf("Error replying to ticket %s: %v", ticket.TicketID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to post reply!")
		}

		// Bump the ticket so the list sorts it to the top
		if err := db.Model(&ticket).Update("updated_at", message.CreatedAt).Error; err != nil {
			log.Printf("Error bumping ticket %s: %v", ticket.TicketID, err)
		}

		if isStaffReply {
			var owner models.User
			if err := db.Where("id = ?", ticket.UserID).First(&owner).Error; err == nil {
				utils.SendTicketReplyEmail(owner.Email, owner.Name, ticket.Subject)
			}
		}
	}

	if reqData.Status != nil {
		ticket.Status = models.TicketClosed
		if err := db.Save(&ticket).Error; err != nil {
			log.Printf("Error closing ticket %s: %v", ticket.TicketID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to close ticket!")
		}
	}

	return c.JSON(fiber.Map{"ok": true, "ticket": ticket})
}
