package entity

type MenuItem struct {
	Record
}

func (m MenuItem) Name() string {
	return m.Doc.String("name")
}

func (m MenuItem) Category() string {
	return m.Doc.String("category")
}

func (m MenuItem) Price() float64 {
	price, _ := m.Doc.Float("price")
	return price
}
