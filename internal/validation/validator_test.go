package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenx-mn/catering-service/pkg/util"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,strongpassword"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Role     string  `json:"role" validate:"required,oneof=ADMIN CHEF COMPANY"`
}

func strPtr(s string) *string { return &s }

func TestValidateStruct_Valid(t *testing.T) {
	s := &sample{Email: "a@b.mn", Password: "Secret123", Phone: strPtr("+97699112233"), Role: "CHEF"}
	assert.Empty(t, ValidateStruct(s))
	assert.NoError(t, Validate(s))
}

func TestValidateStruct_FieldNames(t *testing.T) {
	s := &sample{Email: "nope", Password: "alllowercase1", Phone: strPtr("12"), Role: "ROOT"}
	fields := ValidateStruct(s)

	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields["role"], "ADMIN CHEF COMPANY")
}

func TestValidateStruct_Mongolian(t *testing.T) {
	fields := ValidateStruct(&sample{}, "mn")
	assert.Equal(t, "'email' талбарыг заавал бөглөнө үү.", fields["email"])
}

func TestValidate_ReturnsDomainError(t *testing.T) {
	err := Validate(&sample{})
	var de *util.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, util.CodeValidationFailed, de.Code)
	assert.Contains(t, de.Details, "email")
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Admin123!"))
	assert.False(t, IsStrongPassword("admin123"))
	assert.False(t, IsStrongPassword("ADMIN123"))
	assert.False(t, IsStrongPassword("AdminAdmin"))
}

type secret struct {
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

func TestValidateStruct_MaxBytesCountsUTF8(t *testing.T) {
	// 40 Cyrillic runes pass max=72 but take 80 bytes.
	long := strings.Repeat("ө", 40)
	fields := ValidateStruct(&secret{Password: long})
	assert.Equal(t, "The field 'password' must be at most 72 bytes long.", fields["password"])
	assert.Equal(t, "'password' талбар хамгийн ихдээ 72 байт байх ёстой.", ValidateStruct(&secret{Password: long}, "mn")["password"])

	assert.Empty(t, ValidateStruct(&secret{Password: strings.Repeat("ө", 36)}))
}
