package transport

// QuoteRequest asks for a fresh trade-in quote.
type QuoteRequest struct {
	Device    string `json:"device" validate:"required,min=1,max=100"`
	Condition string `json:"condition" validate:"required,min=1,max=40"`
}

// SubmitRequest accepts a previously issued quote.
type SubmitRequest struct {
	Quote    SubmittedQuote `json:"quote" validate:"required"`
	Customer CustomerInfo   `json:"customer"`
}

// SubmittedQuote echoes back the quote the customer accepted.
type SubmittedQuote struct {
	Device     string `json:"device" validate:"required,min=1,max=100"`
	Condition  string `json:"condition" validate:"required,min=1,max=40"`
	BaseAmount int64  `json:"baseAmount" validate:"min=0"`
	Amount     int64  `json:"amount" validate:"required,min=0"`
	Currency   string `json:"currency" validate:"omitempty,len=3"`
	Reference  string `json:"reference" validate:"omitempty,max=40"`
	ValidUntil string `json:"validUntil" validate:"omitempty"`
}

// CustomerInfo carries optional contact details.
type CustomerInfo struct {
	Name  string `json:"name" validate:"omitempty,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=40"`
}
