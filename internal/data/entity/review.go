package entity

// Review carries free-form client fields only.
type Review struct {
	Record
}
