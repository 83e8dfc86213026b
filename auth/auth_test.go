package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextAuth(t *testing.T) {
	assert.Equal(t, Auth{}, ContextAuth(context.Background()))

	creds := Auth{Token: "token1", Host: "https://host"}
	assert.Equal(t, creds, ContextAuth(WithContextAuth(context.Background(), creds)))
}
