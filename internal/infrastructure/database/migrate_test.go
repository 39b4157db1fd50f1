package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrate_UnknownDirection(t *testing.T) {
	err := Migrate("postgres://localhost:1/none?sslmode=disable", t.TempDir(), Direction("sideways"))
	assert.Error(t, err)
}

func TestMigrate_MissingDir(t *testing.T) {
	err := Migrate("postgres://localhost:1/none?sslmode=disable", "/definitely/not/here", Up)
	assert.Error(t, err)
}
