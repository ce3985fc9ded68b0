package validate

import (
	"testing"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	assert.NotNil(t, Phone("123"))
	assert.NotNil(t, Phone("12345678901"))
	assert.NotNil(t, Phone("12345abc90"))
	assert.Nil(t, Phone("1234567890"))
}

func TestIDNumber(t *testing.T) {
	assert.NotNil(t, IDNumber("1234"))
	assert.NotNil(t, IDNumber("1234567890123456x"))
	assert.NotNil(t, IDNumber("12345678901234a6"))
	assert.Nil(t, IDNumber("1199780012345678"))
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email(""))
	assert.Nil(t, Email("tenant@example.com"))
	assert.NotNil(t, Email("not-an-email"))
	assert.NotNil(t, Email("a b@example.com"))
}

func TestUniquePhone(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", Phone: "0788123456"},
		{ID: "t2", Phone: "0722123456"},
	}

	assert.NotNil(t, UniquePhone(tenants, "0788123456", ""))
	assert.Nil(t, UniquePhone(tenants, "0733123456", ""))
	// Editing the owning tenant keeps its own number valid.
	assert.Nil(t, UniquePhone(tenants, "0788123456", "t1"))
}

func TestUniqueEmail(t *testing.T) {
	tenants := []model.Tenant{
		{ID: "t1", Email: "alice@example.com"},
		{ID: "t2"},
	}

	assert.NotNil(t, UniqueEmail(tenants, "Alice@Example.com", ""))
	assert.Nil(t, UniqueEmail(tenants, "bob@example.com", ""))
	assert.Nil(t, UniqueEmail(tenants, "", ""))
	assert.Nil(t, UniqueEmail(tenants, "alice@example.com", "t1"))
}
