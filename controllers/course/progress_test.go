package courseController_test

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
	courseRoutes "thumbpro/routers/courseRoutes"

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
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.CourseModule{}, &models.Episode{},
		&models.Progress{}, &models.Note{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createUser(t *testing.T, name string) (models.User, string) {
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%s@example.com", name, t.Name()),
		Password: "irrelevant",
		Role:     models.RoleMember,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedEpisodes(t *testing.T, published int) []models.Episode {
	module := models.CourseModule{Title: "Basics", OrderIndex: 1, IsPublished: true}
	require.NoError(t, database.Database.Db.Create(&module).Error)

	episodes := make([]models.Episode, published)
	for i := range episodes {
		episodes[i] = models.Episode{
			ModuleID:    module.ID,
			Title:       fmt.Sprintf("Episode %d", i+1),
			OrderIndex:  i + 1,
			IsPublished: true,
		}
		require.NoError(t, database.Database.Db.Create(&episodes[i]).Error)
	}
	return episodes
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
	req.Header.Set("Authorization", "Bearer "+token)

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

func TestMarkCompleteIsIdempotent(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "claire")
	episodes := seedEpisodes(t, 2)

	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, app, "POST", "/api/progress", token, fiber.Map{
			"episode_id": episodes[0].ID,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["ok"])
	}

	var count int64
	database.Database.Db.Model(&models.Progress{}).
		Where("user_id = ? AND episode_id = ?", user.ID, episodes[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProgressPercent(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "hugo")
	episodes := seedEpisodes(t, 4)

	doJSON(t, app, "POST", "/api/progress", token, fiber.Map{"episode_id": episodes[0].ID})
	doJSON(t, app, "POST", "/api/progress", token, fiber.Map{"episode_id": episodes[1].ID})

	resp, body := doJSON(t, app, "GET", "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, float64(4), body["total_episodes"])
	assert.Equal(t, float64(50), body["percent"])
	assert.Len(t, body["completed_episode_ids"].([]interface{}), 2)
}

func TestUndoComplete(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "emma")
	episodes := seedEpisodes(t, 1)

	doJSON(t, app, "POST", "/api/progress", token, fiber.Map{"episode_id": episodes[0].ID})

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/progress/%d", episodes[0].ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Progress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Second undo finds nothing
	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/progress/%d", episodes[0].ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMarkCompleteUnknownEpisode(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "jean")
	seedEpisodes(t, 1)

	resp, _ := doJSON(t, app, "POST", "/api/progress", token, fiber.Map{"episode_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNoteUpsertKeepsOneRow(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "lucie")
	episodes := seedEpisodes(t, 1)

	resp, body := doJSON(t, app, "PUT", "/api/notes", token, fiber.Map{
		"episode_id": episodes[0].ID,
		"content":    "v1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	note := body["note"].(map[string]interface{})
	assert.Equal(t, "v1", note["content"])

	resp, body = doJSON(t, app, "PUT", "/api/notes", token, fiber.Map{
		"episode_id": episodes[0].ID,
		"content":    "v2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	note = body["note"].(map[string]interface{})
	assert.Equal(t, "v2", note["content"])

	var count int64
	database.Database.Db.Model(&models.Note{}).
		Where("user_id = ? AND episode_id = ?", user.ID, episodes[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestModulesWithCompletion(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "theo")
	episodes := seedEpisodes(t, 3)

	doJSON(t, app, "POST", "/api/progress", token, fiber.Map{"episode_id": episodes[1].ID})

	resp, body := doJSON(t, app, "GET", "/api/course/modules", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	modules := body["modules"].([]interface{})
	require.Len(t, modules, 1)
	eps := modules[0].(map[string]interface{})["episodes"].([]interface{})
	require.Len(t, eps, 3)

	assert.Equal(t, false, eps[0].(map[string]interface{})["is_completed"])
	assert.Equal(t, true, eps[1].(map[string]interface{})["is_completed"])
	assert.Equal(t, false, eps[2].(map[string]interface{})["is_completed"])
}
