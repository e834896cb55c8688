package handler

const (
	errInternalServer = "Internal server error"

	msgUserCreated = "User created successfully!"
	msgUserDeleted = "User deleted successfully!"
	msgEmailTaken  = "Email already used by other user."
	msgAuthOK      = "Auth successfull!"
	msgAuthFailed  = "Auth failed."

	msgProductCreated  = "Product created successfully!"
	msgProductUpdated  = "Product updated successfully!"
	msgProductDeleted  = "Product deleted successfully!"
	msgProductNotFound = "Product not found."

	msgOrderCreated  = "Order successfully created!"
	msgOrderDeleted  = "Order deleted successfully!"
	msgOrderNotFound = "Order not found."
)
