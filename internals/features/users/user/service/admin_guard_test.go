package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aicommunity_backend/internals/constants"
)

func strptr(s string) *string { return &s }

func TestGuardLastAdmin(t *testing.T) {
	tests := []struct {
		name       string
		adminCount int64
		targetRole string
		newRole    *string
		wantErr    error
	}{
		{
			name:       "delete sole admin is blocked",
			adminCount: 1,
			targetRole: constants.RoleAdmin,
			newRole:    nil,
			wantErr:    ErrLastAdminDelete,
		},
		{
			name:       "demote sole admin is blocked",
			adminCount: 1,
			targetRole: constants.RoleAdmin,
			newRole:    strptr(constants.RoleUser),
			wantErr:    ErrLastAdminDemote,
		},
		{
			name:       "re-assign ADMIN to sole admin is a no-op, allowed",
			adminCount: 1,
			targetRole: constants.RoleAdmin,
			newRole:    strptr(constants.RoleAdmin),
			wantErr:    nil,
		},
		{
			name:       "delete one of two admins is allowed",
			adminCount: 2,
			targetRole: constants.RoleAdmin,
			newRole:    nil,
			wantErr:    nil,
		},
		{
			name:       "demote one of two admins is allowed",
			adminCount: 2,
			targetRole: constants.RoleAdmin,
			newRole:    strptr(constants.RoleUser),
			wantErr:    nil,
		},
		{
			name:       "delete a plain user is allowed even with one admin",
			adminCount: 1,
			targetRole: constants.RoleUser,
			newRole:    nil,
			wantErr:    nil,
		},
		{
			name:       "promote a user is always allowed",
			adminCount: 1,
			targetRole: constants.RoleUser,
			newRole:    strptr(constants.RoleAdmin),
			wantErr:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GuardLastAdmin(tt.adminCount, tt.targetRole, tt.newRole)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
