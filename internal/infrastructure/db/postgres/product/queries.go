package product

const columns = `id, owner_id, name, description, price::text, stock, category, image_url, active, created_at, updated_at`

const (
	SelectProductByID = `
		SELECT ` + columns + `
		FROM products
		WHERE id = $1
	`
	SelectActiveProducts = `
		SELECT ` + columns + `
		FROM products
		WHERE active
		ORDER BY created_at, id
	`
	SelectActiveProductsByOwner = `
		SELECT ` + columns + `
		FROM products
		WHERE active AND owner_id = $1
		ORDER BY created_at, id
	`
	SelectActiveProductsByCategory = `
		SELECT ` + columns + `
		FROM products
		WHERE active AND category = $1
		ORDER BY created_at, id
	`
	InsertProduct = `
		INSERT INTO products (owner_id, name, description, price, stock, category, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
		RETURNING ` + columns
	UpdateProductOwned = `
		UPDATE products
		SET name = $1,
		    description = $2,
		    price = $3::numeric,
		    stock = $4,
		    category = $5,
		    image_url = $6,
		    updated_at = $7
		WHERE id = $8 AND owner_id = $9
		RETURNING ` + columns
	UpdateProductStockOwned = `
		UPDATE products
		SET stock = $1,
		    updated_at = now()
		WHERE id = $2 AND owner_id = $3
	`
	DeactivateProductOwned = `
		UPDATE products
		SET active = false,
		    updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`
)
