package main

import (
	"context"
	"testing"

	"progest/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_HasUsableSessionStore(t *testing.T) {
	ctx := context.Background()
	svc := userService(router.NewStores(nil).Users, bcrypt.MinCost)

	u, err := svc.Register(ctx, "ana", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)

	sess, err := svc.Login(ctx, "ana", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.NoError(t, svc.Logout(ctx, sess.Token))
}
