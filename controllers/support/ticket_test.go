package supportController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"thumbpro/config"
	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"
	supportRoutes "thumbpro/routers/supportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SupportTicket{}, &models.SupportMessage{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	supportRoutes.SetupSupportRoutes(app)
	return app
}

func createUser(t *testing.T, name, role string) (models.User, string) {
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%s@example.com", name, t.Name()),
		Password: "irrelevant",
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestCreateAndFetchTicket(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "marie", models.RoleMember)

	resp, body := doJSON(t, app, "POST", "/api/support", token, fiber.Map{
		"subject": "Help",
		"content": "Video won't play",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	ticketID, _ := body["ticket_id"].(string)
	require.NotEmpty(t, ticketID)

	resp, body = doJSON(t, app, "GET", "/api/support?ticket_id="+ticketID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ticket := body["ticket"].(map[string]interface{})
	assert.Equal(t, "open", ticket["status"])
	assert.Equal(t, "Help", ticket["subject"])

	messages := body["messages"].([]interface{})
	require.Len(t, messages, 1)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, false, first["is_staff"])
	assert.Equal(t, "Video won't play", first["content"])
}

func TestMessagesAscendingAndStaffTag(t *testing.T) {
	app := setupApp(t)
	_, memberToken := createUser(t, "paul", models.RoleMember)
	_, adminToken := createUser(t, "lea", models.RoleAdmin)

	_, body := doJSON(t, app, "POST", "/api/support", memberToken, fiber.Map{
		"subject": "Billing question",
		"content": "first",
	})
	ticketID := body["ticket_id"].(string)

	resp, _ := doJSON(t, app, "PATCH", "/api/support", adminToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "second, from support",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "PATCH", "/api/support", memberToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "third",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = doJSON(t, app, "GET", "/api/support?ticket_id="+ticketID, memberToken, nil)
	messages := body["messages"].([]interface{})
	require.Len(t, messages, 3)

	contents := make([]string, len(messages))
	for i, m := range messages {
		contents[i] = m.(map[string]interface{})["content"].(string)
	}
	assert.Equal(t, []string{"first", "second, from support", "third"}, contents)

	assert.Equal(t, false, messages[0].(map[string]interface{})["is_staff"])
	assert.Equal(t, true, messages[1].(map[string]interface{})["is_staff"])
	assert.Equal(t, false, messages[2].(map[string]interface{})["is_staff"])
}

func TestOnlyStaffCanClose(t *testing.T) {
	app := setupApp(t)
	member, memberToken := createUser(t, "nina", models.RoleMember)
	_, adminToken := createUser(t, "tom", models.RoleAdmin)

	_, body := doJSON(t, app, "POST", "/api/support", memberToken, fiber.Map{
		"subject": "Close me",
		"content": "please",
	})
	ticketID := body["ticket_id"].(string)

	resp, body := doJSON(t, app, "PATCH", "/api/support", memberToken, fiber.Map{
		"ticket_id": ticketID,
		"status":    "closed",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	// Status must be unchanged
	var ticket models.SupportTicket
	require.NoError(t, database.Database.Db.Where("ticket_id = ?", ticketID).First(&ticket).Error)
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.Equal(t, member.ID, ticket.UserID)

	resp, _ = doJSON(t, app, "PATCH", "/api/support", adminToken, fiber.Map{
		"ticket_id": ticketID,
		"status":    "closed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, database.Database.Db.Where("ticket_id = ?", ticketID).First(&ticket).Error)
	assert.Equal(t, models.TicketClosed, ticket.Status)

	// Replies bounce off a closed ticket
	resp, _ = doJSON(t, app, "PATCH", "/api/support", memberToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "one more thing",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReplyAndCloseInOnePatch(t *testing.T) {
	app := setupApp(t)
	_, memberToken := createUser(t, "ines", models.RoleMember)
	_, adminToken := createUser(t, "rex", models.RoleAdmin)

	_, body := doJSON(t, app, "POST", "/api/support", memberToken, fiber.Map{
		"subject": "Wrap up",
		"content": "first",
	})
	ticketID := body["ticket_id"].(string)

	// A member cannot smuggle a close past the permission check; nothing
	// gets applied
	resp, _ := doJSON(t, app, "PATCH", "/api/support", memberToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "and close it",
		"status":    "closed",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var ticket models.SupportTicket
	require.NoError(t, database.Database.Db.Where("ticket_id = ?", ticketID).First(&ticket).Error)
	assert.Equal(t, models.TicketOpen, ticket.Status)

	var count int64
	database.Database.Db.Model(&models.SupportMessage{}).
		Where("support_ticket_id = ?", ticket.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Staff posts the final answer and closes in the same request
	resp, _ = doJSON(t, app, "PATCH", "/api/support", adminToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "fixed, closing",
		"status":    "closed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = doJSON(t, app, "GET", "/api/support?ticket_id="+ticketID, memberToken, nil)
	assert.Equal(t, "closed", body["ticket"].(map[string]interface{})["status"])

	messages := body["messages"].([]interface{})
	require.Len(t, messages, 2)
	last := messages[1].(map[string]interface{})
	assert.Equal(t, "fixed, closing", last["content"])
	assert.Equal(t, true, last["is_staff"])
}

func TestForeignTicketHidden(t *testing.T) {
	app := setupApp(t)
	_, ownerToken := createUser(t, "owner", models.RoleMember)
	_, otherToken := createUser(t, "other", models.RoleMember)

	_, body := doJSON(t, app, "POST", "/api/support", ownerToken, fiber.Map{
		"subject": "Private",
		"content": "secret",
	})
	ticketID := body["ticket_id"].(string)

	resp, _ := doJSON(t, app, "GET", "/api/support?ticket_id="+ticketID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "PATCH", "/api/support", otherToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "let me in",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTicketListSummaries(t *testing.T) {
	app := setupApp(t)
	_, memberToken := createUser(t, "zoe", models.RoleMember)
	admin, adminToken := createUser(t, "sam", models.RoleAdmin)

	_, body := doJSON(t, app, "POST", "/api/support", memberToken, fiber.Map{
		"subject": "Ticket A",
		"content": "hello",
	})
	ticketID := body["ticket_id"].(string)

	doJSON(t, app, "PATCH", "/api/support", adminToken, fiber.Map{
		"ticket_id": ticketID,
		"content":   "staff answer",
	})

	_, body = doJSON(t, app, "GET", "/api/support", memberToken, nil)
	tickets := body["tickets"].([]interface{})
	require.Len(t, tickets, 1)

	summary := tickets[0].(map[string]interface{})
	assert.Equal(t, "staff answer", summary["last_message"])
	assert.Equal(t, admin.Name, summary["last_author"])
	assert.Equal(t, true, summary["last_is_staff"])

	// Admin sees all tickets
	_, body = doJSON(t, app, "GET", "/api/support", adminToken, nil)
	assert.Len(t, body["tickets"].([]interface{}), 1)
}

func TestUnknownTicket404(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "max", models.RoleMember)

	resp, _ := doJSON(t, app, "GET", "/api/support?ticket_id=2c3b9f1e-0000-4000-8000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
