package checkout

// 사용자에게 표시되는 메시지
const (
	msgCartEmpty            = "Your cart is empty! Redirecting to products..."
	msgClientIDMissing      = "PayPal Client ID is missing. Please check your environment variables."
	msgWidgetLoadFailed     = "Failed to load PayPal SDK. Check your network or Client ID."
	msgShippingIncomplete   = "Please fill in all required shipping fields."
	msgNonPositiveTotal     = "Cannot confirm order: Total amount must be greater than $0.00."
	msgOrderConfirmed       = "Order confirmed! Redirecting..."
	msgPaymentCompletedFmt  = "Payment completed! Order ID: %s. Redirecting..."
	msgPaymentCaptureFailed = "Payment capture failed. Please try again."
	msgPaymentFailed        = "Payment failed. Please try again."
	msgPaymentCancelled     = "Payment cancelled."
)
