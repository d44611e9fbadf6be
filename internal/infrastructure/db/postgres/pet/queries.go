package pet

const columns = `id, owner_id, name, type, breed, age, weight, image_url, active, created_at, updated_at`

const (
	SelectPetByID = `
		SELECT ` + columns + `
		FROM pets
		WHERE id = $1
	`
	SelectActivePets = `
		SELECT ` + columns + `
		FROM pets
		WHERE active
		ORDER BY created_at, id
	`
	SelectActivePetsByOwner = `
		SELECT ` + columns + `
		FROM pets
		WHERE active AND owner_id = $1
		ORDER BY created_at, id
	`
	SelectActivePetsByType = `
		SELECT ` + columns + `
		FROM pets
		WHERE active AND type = $1
		ORDER BY created_at, id
	`
	InsertPet = `
		INSERT INTO pets (owner_id, name, type, breed, age, weight, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + columns
	UpdatePetOwned = `
		UPDATE pets
		SET name = $1,
		    type = $2,
		    breed = $3,
		    age = $4,
		    weight = $5,
		    image_url = $6,
		    updated_at = $7
		WHERE id = $8 AND owner_id = $9
		RETURNING ` + columns
	DeactivatePetOwned = `
		UPDATE pets
		SET active = false,
		    updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`
)
