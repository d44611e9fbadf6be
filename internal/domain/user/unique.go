package user

import "petconnect-api/internal/domain/errs"

// Field names a column carrying a uniqueness invariant.
type Field string

const (
	FieldEmail Field = "email"
	FieldCPF   Field = "cpf"
	FieldCNPJ  Field = "cnpj"
	FieldCRMV  Field = "crmv"
)

var UniqueFields = []Field{FieldEmail, FieldCPF, FieldCNPJ, FieldCRMV}

// Value returns the value u holds for f. Empty optional ids never collide.
func (u *User) Value(f Field) string {
	switch f {
	case FieldEmail:
		return u.Email
	case FieldCPF:
		return u.CPF
	case FieldCNPJ:
		return u.CNPJ
	case FieldCRMV:
		return u.CRMV
	}
	return ""
}

func DuplicateError(f Field) error {
	return errs.Conflict(string(f) + " already registered")
}
