package migrations

import (
	"database/sql"
)

var dropStatements = []string{
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS products`,
	`DROP TABLE IF EXISTS users`,
}

var createStatements = []string{
	`CREATE TABLE users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL
	)`,
	`CREATE TABLE orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		product_id INT NOT NULL
	)`,
}

// Drop removes the whole schema. Called on every startup, so any data
// from a previous run is destroyed.
func Drop(db *sql.DB) error {
	for _, query := range dropStatements {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Create builds the schema from scratch.
func Create(db *sql.DB) error {
	for _, query := range createStatements {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
