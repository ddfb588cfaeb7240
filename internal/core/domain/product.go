package domain

type Product struct {
	ID    ID
	Name  string
	Price Amount
	Stock int
}

func NewProduct(name string, price Amount, stock int) *Product {
	return &Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}
}
