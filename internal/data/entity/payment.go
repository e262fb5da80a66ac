package entity

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

// Payment is written once per checkout and never updated.
type Payment struct {
	Record
}

func (p Payment) Email() string {
	return p.Doc.String("email")
}

func (p Payment) Price() float64 {
	price, _ := p.Doc.Float("price")
	return price
}

func (p Payment) CartIDs() []string {
	return p.Doc.Strings("cartIds")
}

func (p Payment) MenuItemIDs() []string {
	return p.Doc.Strings("menuItemIds")
}

func (p Payment) Status() PaymentStatus {
	return PaymentStatus(p.Doc.String("status"))
}
