package validation

import (
	"testing"

	"github.com/hirewire/hirewire/companies/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateCompanyRequest(t *testing.T) {
	valid := func() *models.CreateCompanyRequest {
		return &models.CreateCompanyRequest{
			Handle:       "acme",
			Name:         "Acme Corp",
			NumEmployees: 10,
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateCreateCompanyRequest(valid()))
	})

	t.Run("nil request fails", func(t *testing.T) {
		assert.Error(t, ValidateCreateCompanyRequest(nil))
	})

	t.Run("missing handle fails", func(t *testing.T) {
		req := valid()
		req.Handle = ""
		assert.Error(t, ValidateCreateCompanyRequest(req))
	})

	t.Run("uppercase handle fails", func(t *testing.T) {
		req := valid()
		req.Handle = "Acme"
		assert.Error(t, ValidateCreateCompanyRequest(req))
	})

	t.Run("handle with whitespace fails", func(t *testing.T) {
		req := valid()
		req.Handle = "acme corp"
		assert.Error(t, ValidateCreateCompanyRequest(req))
	})

	t.Run("missing name fails", func(t *testing.T) {
		req := valid()
		req.Name = ""
		assert.Error(t, ValidateCreateCompanyRequest(req))
	})

	t.Run("negative employee count fails", func(t *testing.T) {
		req := valid()
		req.NumEmployees = -1
		assert.Error(t, ValidateCreateCompanyRequest(req))
	})
}

func TestValidateUpdateCompanyRequest(t *testing.T) {
	t.Run("empty request passes validation", func(t *testing.T) {
		// The update compiler rejects an empty field set; validation only
		// checks the shape of fields that are present.
		assert.NoError(t, ValidateUpdateCompanyRequest(&models.UpdateCompanyRequest{}))
	})

	t.Run("empty name fails", func(t *testing.T) {
		name := ""
		assert.Error(t, ValidateUpdateCompanyRequest(&models.UpdateCompanyRequest{Name: &name}))
	})

	t.Run("negative employee count fails", func(t *testing.T) {
		n := -5
		assert.Error(t, ValidateUpdateCompanyRequest(&models.UpdateCompanyRequest{NumEmployees: &n}))
	})
}
