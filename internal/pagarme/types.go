package pagarme

// Typed shapes for the objects the payment flow consumes. Endpoints
// outside that flow exchange Payload/Response maps.

type Phone struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

type Phones struct {
	MobilePhone *Phone `json:"mobile_phone,omitempty"`
	HomePhone   *Phone `json:"home_phone,omitempty"`
}

type CustomerParams struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Type     string  `json:"type"`
	Document string  `json:"document,omitempty"`
	Phones   *Phones `json:"phones,omitempty"`
}

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type CardParams struct {
	Number         string `json:"number,omitempty"`
	HolderName     string `json:"holder_name,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CustomerID     string `json:"customer_id,omitempty"`
}

type Card struct {
	ID             string `json:"id"`
	LastFourDigits string `json:"last_four_digits"`
	Brand          string `json:"brand"`
	Status         string `json:"status"`
}

type OrderItem struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type SplitRule struct {
	Amount      int64  `json:"amount"`
	RecipientID string `json:"recipient_id"`
	Type        string `json:"type"`
}

type CreditCardPayment struct {
	CardID string `json:"card_id,omitempty"`
}

type BoletoPayment struct {
	Instructions string `json:"instructions,omitempty"`
}

type PixPayment struct {
	ExpiresIn int `json:"expires_in,omitempty"`
}

type OrderPayment struct {
	PaymentMethod string             `json:"payment_method"`
	Amount        int64              `json:"amount"`
	Split         []SplitRule        `json:"split,omitempty"`
	CreditCard    *CreditCardPayment `json:"credit_card,omitempty"`
	Boleto        *BoletoPayment     `json:"boleto,omitempty"`
	Pix           *PixPayment        `json:"pix,omitempty"`
}

type OrderParams struct {
	Code       string         `json:"code,omitempty"`
	CustomerID string         `json:"customer_id"`
	Items      []OrderItem    `json:"items"`
	Payments   []OrderPayment `json:"payments"`
}

type LastTransaction struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	URL          string `json:"url"`
	Barcode      string `json:"barcode"`
	QRCode       string `json:"qr_code"`
	QRCodeURL    string `json:"qr_code_url"`
	RefuseReason string `json:"refuse_reason"`
}

type Charge struct {
	ID              string           `json:"id"`
	Status          string           `json:"status"`
	Amount          int64            `json:"amount"`
	PaymentMethod   string           `json:"payment_method"`
	LastTransaction *LastTransaction `json:"last_transaction"`
}

type Order struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	Status   string   `json:"status"`
	Charges  []Charge `json:"charges"`
	Customer Customer `json:"customer"`
}
