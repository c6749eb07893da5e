package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GeneratePlaylistQR renders the public playlist URL for a registered
	// path as a PNG QR code, ready to be scanned into an IPTV player app.
	GeneratePlaylistQR(path string) ([]byte, error)
}
