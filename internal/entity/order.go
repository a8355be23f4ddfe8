package entity

type Order struct {
	ID        int `json:"id"`
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}

// OrderCreate carries plain integer references. The referenced user and
// product are not checked for existence.
type OrderCreate struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}

/*
MySQL schema:

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	product_id INT NOT NULL
);
*/
