package service

// QRCodeService defines the interface for table card QR generation
type QRCodeService interface {
	// GenerateTableQR renders a PNG encoding the call link for a zone/table pair
	GenerateTableQR(zone string, table int) ([]byte, error)

	// TableLink returns the URL encoded in a table card
	TableLink(zone string, table int) string
}
