package models

// CredentialsRequest is the JSON body of registration and login requests.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CartRequest is the JSON body of cart mutation requests. UserID names the
// cart owner and ProductID the product to reserve or release; the owner must
// match the authenticated caller.
type CartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}
