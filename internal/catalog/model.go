package catalog

type Gym struct {
	ID      string `db:"id" json:"id" example:"downtown"`
	Name    string `db:"name" json:"name" example:"Downtown Fitness"`
	Address string `db:"address" json:"address" example:"1 Main St"`
	Details string `db:"details" json:"details"`
}

type Program struct {
	ID          string `db:"id" json:"id" example:"strength-101"`
	Title       string `db:"title" json:"title" example:"Strength 101"`
	Description string `db:"description" json:"description"`
}

// DonationOption is a payment method offered after a booking is submitted.
type DonationOption struct {
	ID      string `db:"id" json:"id"`
	Method  string `db:"method" json:"method" example:"paypal"`
	Details string `db:"details" json:"details" example:"coach@example.com"`
}

type CreateGymRequest struct {
	ID      string `json:"id" binding:"omitempty,max=64"`
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"max=1000"`
	Details string `json:"details" binding:"max=4000"`
}

type CreateProgramRequest struct {
	ID          string `json:"id" binding:"omitempty,max=64"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=4000"`
}

type CreateDonationOptionRequest struct {
	ID      string `json:"id" binding:"omitempty,max=64"`
	Method  string `json:"method" binding:"required,max=64"`
	Details string `json:"details" binding:"max=1000"`
}
