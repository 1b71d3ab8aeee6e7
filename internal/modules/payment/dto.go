package payment

// HashRequest is what the frontend sends before opening the payment popup.
// Amount may arrive as a JSON number or a numeric string; the wire names
// follow the PayHere checkout SDK.
type HashRequest struct {
	OrderID  string      `json:"orderId"`
	Amount   interface{} `json:"amount"`
	Currency string      `json:"currency"`
}

type HashResponse struct {
	Hash       string `json:"hash"`
	MerchantID string `json:"merchantId"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

// GatewayNotification carries the form fields of a server-to-server PayHere
// callback. Fields missing from the form are empty strings.
type GatewayNotification struct {
	MerchantID string
	OrderID    string
	Amount     string
	Currency   string
	StatusCode string
	MD5Sig     string
}

type NotifyResponse struct {
	Verified   bool   `json:"verified"`
	OrderID    string `json:"order_id"`
	StatusCode string `json:"status_code"`
	Updated    bool   `json:"updated"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
