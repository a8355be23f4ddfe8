package entity

type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductCreate struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price"`
}

/*
MySQL schema:

CREATE TABLE products (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	price DOUBLE NOT NULL
);
*/
