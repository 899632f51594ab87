package service

// QRCodeService defines the interface for pickup hand-off QR codes. The
// restaurant displays the code; the rider scans it to claim the order.
type QRCodeService interface {
	// GeneratePickupQR renders a QR image encoding the pickup code.
	GeneratePickupQR(pickupCode string) ([]byte, error)

	// ParsePickupQR extracts the pickup code from scanned QR data.
	ParsePickupQR(qrData string) (string, error)
}
