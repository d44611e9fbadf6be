package vetservice

const columns = `id, owner_id, name, description, price::text, category, image_url, active, created_at, updated_at`

const (
	SelectServiceByID = `
		SELECT ` + columns + `
		FROM vet_services
		WHERE id = $1
	`
	SelectActiveServices = `
		SELECT ` + columns + `
		FROM vet_services
		WHERE active
		ORDER BY created_at, id
	`
	SelectActiveServicesByOwner = `
		SELECT ` + columns + `
		FROM vet_services
		WHERE active AND owner_id = $1
		ORDER BY created_at, id
	`
	SelectActiveServicesByCategory = `
		SELECT ` + columns + `
		FROM vet_services
		WHERE active AND category = $1
		ORDER BY created_at, id
	`
	InsertService = `
		INSERT INTO vet_services (owner_id, name, description, price, category, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9)
		RETURNING ` + columns
	UpdateServiceOwned = `
		UPDATE vet_services
		SET name = $1,
		    description = $2,
		    price = $3::numeric,
		    category = $4,
		    image_url = $5,
		    updated_at = $6
		WHERE id = $7 AND owner_id = $8
		RETURNING ` + columns
	DeactivateServiceOwned = `
		UPDATE vet_services
		SET active = false,
		    updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`
)
