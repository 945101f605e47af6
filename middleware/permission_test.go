package middleware

import (
	"testing"

	"thumbpro/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleCan(t *testing.T) {
	assert.True(t, RoleCan(models.RoleAdmin, CapManageAnnouncements))
	assert.True(t, RoleCan(models.RoleAdmin, CapCloseTickets))
	assert.True(t, RoleCan(models.RoleAdmin, CapStaffReply))

	assert.False(t, RoleCan(models.RoleMember, CapManageAnnouncements))
	assert.False(t, RoleCan(models.RoleMember, CapCloseTickets))
	assert.False(t, RoleCan(models.RoleIntervenant, CapStaffReply))
	assert.False(t, RoleCan(models.RoleIntervenant, CapManageCourse))

	// Unknown roles grant nothing
	assert.False(t, RoleCan("SUPERUSER", CapManageAnnouncements))
	assert.False(t, RoleCan("", CapCloseTickets))
}
