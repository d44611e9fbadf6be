package user

import domain "petconnect-api/internal/domain/user"

const columns = `uuid, email, password_hash, role, name, phone, location, cpf, cnpj, crmv,
		responsible_name, store_type, operating_hours,
		security_answer_pet, security_answer_car, security_answer_friend,
		active, created_at, updated_at`

const (
	SelectUserByID = `
		SELECT ` + columns + `
		FROM users
		WHERE uuid = $1
	`
	SelectActiveUserByEmail = `
		SELECT ` + columns + `
		FROM users
		WHERE email = $1 AND active
	`
	SelectActiveUsers = `
		SELECT ` + columns + `
		FROM users
		WHERE active AND ($1 = '' OR role = $1)
		ORDER BY created_at, uuid
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, role, name, phone, location, cpf, cnpj, crmv,
		                   responsible_name, store_type, operating_hours,
		                   security_answer_pet, security_answer_car, security_answer_friend, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + columns
	UpdateUserByUUID = `
		UPDATE users
		SET email = $1,
		    password_hash = $2,
		    role = $3,
		    name = $4,
		    phone = $5,
		    location = $6,
		    cpf = $7,
		    cnpj = $8,
		    crmv = $9,
		    responsible_name = $10,
		    store_type = $11,
		    operating_hours = $12,
		    security_answer_pet = $13,
		    security_answer_car = $14,
		    security_answer_friend = $15,
		    updated_at = now()
		WHERE uuid = $16
		RETURNING ` + columns
	SetActiveByUUID = `
		UPDATE users
		SET active = $1,
		    updated_at = now()
		WHERE uuid = $2
		RETURNING ` + columns
)

// existsQueries are keyed by field so no column name is ever built from input.
var existsQueries = map[domain.Field]string{
	domain.FieldEmail: `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND uuid <> $2)`,
	domain.FieldCPF:   `SELECT EXISTS (SELECT 1 FROM users WHERE cpf = $1 AND uuid <> $2)`,
	domain.FieldCNPJ:  `SELECT EXISTS (SELECT 1 FROM users WHERE cnpj = $1 AND uuid <> $2)`,
	domain.FieldCRMV:  `SELECT EXISTS (SELECT 1 FROM users WHERE crmv = $1 AND uuid <> $2)`,
}
